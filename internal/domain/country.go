package domain

// CountryInfo - справочная информация о стране из ответа /countries
type CountryInfo struct {
	ID   int64   `json:"_id"`
	ISO2 string  `json:"iso2"`
	ISO3 string  `json:"iso3"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Flag string  `json:"flag"`
}

// CountrySnapshot - текущие счётчики по одной стране
type CountrySnapshot struct {
	Updated        int64       `json:"updated"`
	Country        string      `json:"country"`
	CountryInfo    CountryInfo `json:"countryInfo"`
	Cases          int64       `json:"cases"`
	TodayCases     int64       `json:"todayCases"`
	Deaths         int64       `json:"deaths"`
	TodayDeaths    int64       `json:"todayDeaths"`
	Recovered      int64       `json:"recovered"`
	TodayRecovered int64       `json:"todayRecovered"`
	Active         int64       `json:"active"`
	Critical       int64       `json:"critical"`
	Tests          int64       `json:"tests"`
	Population     int64       `json:"population"`
	Continent      string      `json:"continent"`

	CasesPerOneMillion     float64 `json:"casesPerOneMillion"`
	DeathsPerOneMillion    float64 `json:"deathsPerOneMillion"`
	TestsPerOneMillion     float64 `json:"testsPerOneMillion"`
	ActivePerOneMillion    float64 `json:"activePerOneMillion"`
	RecoveredPerOneMillion float64 `json:"recoveredPerOneMillion"`
	CriticalPerOneMillion  float64 `json:"criticalPerOneMillion"`
	OneCasePerPeople       float64 `json:"oneCasePerPeople"`
	OneDeathPerPeople      float64 `json:"oneDeathPerPeople"`
	OneTestPerPeople       float64 `json:"oneTestPerPeople"`
}

// CountryLocation - страна с координатами для карты
type CountryLocation struct {
	Country string     `json:"country"`
	ISO3    string     `json:"iso3"`
	LatLon  [2]float64 `json:"latLon"`
	Value   Metric     `json:"value"`
}

// CountryValue - значение выбранного индикатора и флаг страны
type CountryValue struct {
	Value       Metric   `json:"value"`
	Country     string   `json:"country"`
	CountryInfo []string `json:"countryInfo"`
}

// CountryDeaths - накопленное число смертей по стране
type CountryDeaths struct {
	Deaths  int64  `json:"deaths"`
	Country string `json:"country"`
}

// CountryRecovered - накопленное число выздоровевших по стране
type CountryRecovered struct {
	Recovered int64  `json:"recovered"`
	Country   string `json:"country"`
}
