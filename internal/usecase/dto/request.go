package dto

import (
	"strconv"
	"strings"

	"github.com/covid-stats/internal/domain"
)

// ViewQuery - переключатели вида из query string (?global=&absolute=&indicator=)
type ViewQuery struct {
	Global    string `query:"global" validate:"omitempty,oneof=true false"`
	Absolute  string `query:"absolute" validate:"omitempty,oneof=true false"`
	Indicator string `query:"indicator" validate:"omitempty,oneof=cases death recovered"`
}

// ToViewState накладывает заданные переключатели на состояние по умолчанию.
// Ожидает уже провалидированный запрос.
func (q ViewQuery) ToViewState() (domain.ViewState, error) {
	view := domain.DefaultViewState()

	if q.Global != "" {
		global, err := strconv.ParseBool(q.Global)
		if err != nil {
			return view, err
		}
		view = view.WithGlobal(global)
	}

	if q.Absolute != "" {
		absolute, err := strconv.ParseBool(q.Absolute)
		if err != nil {
			return view, err
		}
		view = view.WithAbsolute(absolute)
	}

	if q.Indicator != "" {
		indicator, err := domain.ParseIndicator(q.Indicator)
		if err != nil {
			return view, err
		}
		view = view.WithIndicator(indicator)
	}

	return view, nil
}

// AdvanceIndicatorRequest - переключение индикатора влево (-1) или вправо (1)
type AdvanceIndicatorRequest struct {
	Indicator string `json:"indicator" validate:"required,oneof=cases death recovered"`
	Direction int    `json:"direction" validate:"required,oneof=-1 1"`
}

// RefreshQuery - параметры POST /refresh
type RefreshQuery struct {
	Force bool `query:"force"`
}

// ArchiveRequest - фильтр архива по ISO3 кодам
type ArchiveRequest struct {
	ISO3 []string `validate:"max=300,dive,len=3,alpha"`
}

// ParseISO3List разбирает "USA, fra,," в ["USA", "FRA"]
func ParseISO3List(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, strings.ToUpper(trimmed))
		}
	}
	return result
}
