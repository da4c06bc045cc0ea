package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedSnapshot - сохранённые счётчики страны за один прогон обновления
type ArchivedSnapshot struct {
	RunID          uuid.UUID `json:"run_id" db:"run_id"`
	Country        string    `json:"country" db:"country"`
	ISO3           string    `json:"iso3" db:"iso3"`
	Cases          int64     `json:"cases" db:"cases"`
	TodayCases     int64     `json:"today_cases" db:"today_cases"`
	Deaths         int64     `json:"deaths" db:"deaths"`
	TodayDeaths    int64     `json:"today_deaths" db:"today_deaths"`
	Recovered      int64     `json:"recovered" db:"recovered"`
	TodayRecovered int64     `json:"today_recovered" db:"today_recovered"`
	Population     int64     `json:"population" db:"population"`
	FetchedAt      time.Time `json:"fetched_at" db:"fetched_at"`
}

// NewArchivedSnapshot переносит счётчики снимка в запись архива
func NewArchivedSnapshot(runID uuid.UUID, fetchedAt time.Time, s CountrySnapshot) ArchivedSnapshot {
	return ArchivedSnapshot{
		RunID:          runID,
		Country:        s.Country,
		ISO3:           s.CountryInfo.ISO3,
		Cases:          s.Cases,
		TodayCases:     s.TodayCases,
		Deaths:         s.Deaths,
		TodayDeaths:    s.TodayDeaths,
		Recovered:      s.Recovered,
		TodayRecovered: s.TodayRecovered,
		Population:     s.Population,
		FetchedAt:      fetchedAt,
	}
}
