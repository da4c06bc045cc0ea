package domain

import "math"

// ViewState - состояние переключателей UI. Значение неизменяемое:
// методы With* и AdvanceIndicator возвращают новую копию.
type ViewState struct {
	// ShowGlobal: накопленные значения (true) или данные за сегодня (false)
	ShowGlobal bool `json:"showGlobal"`
	// ShowAbsolute: абсолютные значения (true) или нормализация на население (false)
	ShowAbsolute bool      `json:"showAbsolute"`
	Indicator    Indicator `json:"indicator"`
}

// DefaultViewState - накопленные абсолютные значения по случаям
func DefaultViewState() ViewState {
	return ViewState{
		ShowGlobal:   true,
		ShowAbsolute: true,
		Indicator:    IndicatorCases,
	}
}

func (v ViewState) WithGlobal(global bool) ViewState {
	v.ShowGlobal = global
	return v
}

func (v ViewState) WithAbsolute(absolute bool) ViewState {
	v.ShowAbsolute = absolute
	return v
}

func (v ViewState) WithIndicator(indicator Indicator) ViewState {
	v.Indicator = indicator
	return v
}

// AdvanceIndicator сдвигает выбранный индикатор и возвращает новое состояние
// вместе с подписью нового индикатора
func (v ViewState) AdvanceIndicator(direction int) (ViewState, string) {
	v.Indicator = v.Indicator.Advance(direction)
	return v, v.Indicator.Label()
}

// Resolve выбирает значение индикатора для страны с учётом переключателей.
// ok=false, если индикатор неизвестен.
func (v ViewState) Resolve(s CountrySnapshot) (Metric, bool) {
	raw, ok := v.raw(s)
	if !ok {
		return NoMetric, false
	}
	if v.ShowAbsolute {
		return Metric(raw), true
	}
	return Metric(math.Round(float64(s.Population) / float64(raw))), true
}

func (v ViewState) raw(s CountrySnapshot) (int64, bool) {
	switch v.Indicator {
	case IndicatorCases:
		if v.ShowGlobal {
			return s.Cases, true
		}
		return s.TodayCases, true
	case IndicatorDeaths:
		if v.ShowGlobal {
			return s.Deaths, true
		}
		return s.TodayDeaths, true
	case IndicatorRecovered:
		if v.ShowGlobal {
			return s.Recovered, true
		}
		return s.TodayRecovered, true
	default:
		return 0, false
	}
}

// Cases - накопленные или сегодняшние случаи, без нормализации
func (v ViewState) Cases(s CountrySnapshot) int64 {
	if v.ShowGlobal {
		return s.Cases
	}
	return s.TodayCases
}

// Deaths - накопленные или сегодняшние смерти, без нормализации
func (v ViewState) Deaths(s CountrySnapshot) int64 {
	if v.ShowGlobal {
		return s.Deaths
	}
	return s.TodayDeaths
}
