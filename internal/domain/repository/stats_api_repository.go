package repository

import (
	"context"

	"github.com/covid-stats/internal/domain"
)

// StatsAPIRepository определяет методы для работы с API статистики COVID-19
type StatsAPIRepository interface {
	// GetSummary возвращает текущие счётчики по всем странам
	GetSummary(ctx context.Context) ([]domain.CountrySnapshot, error)

	// GetHistorical возвращает исторические ряды страны за все дни
	GetHistorical(ctx context.Context, country string) (*domain.CountryHistorical, error)

	// GetGlobalHistorical возвращает мировые исторические ряды за все дни
	GetGlobalHistorical(ctx context.Context) (*domain.GlobalHistorical, error)
}
