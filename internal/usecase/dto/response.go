package dto

import (
	"time"

	"github.com/covid-stats/internal/domain"
	"github.com/google/uuid"
)

// AdvanceIndicatorResponse - новый индикатор и его подпись
type AdvanceIndicatorResponse struct {
	Indicator domain.Indicator `json:"indicator"`
	Label     string           `json:"label"`
}

// RefreshResponse - результат обновления сводки и мировых рядов
type RefreshResponse struct {
	RunID       uuid.UUID `json:"run_id"`
	Countries   int       `json:"countries"`
	GlobalDays  int       `json:"global_days"`
	Archived    bool      `json:"archived"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// CountryTimelineResponse - ряды страны, объединённые по датам
type CountryTimelineResponse struct {
	Country  string                 `json:"country"`
	Province []string               `json:"province,omitempty"`
	Timeline []domain.TimelinePoint `json:"timeline"`
}
