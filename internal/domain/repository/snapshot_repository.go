package repository

import (
	"context"
	"time"

	"github.com/covid-stats/internal/domain"
	"github.com/google/uuid"
)

// SnapshotRepository - архив снимков /countries
type SnapshotRepository interface {
	// SaveSummary сохраняет все страны одного обновления под общим runID
	SaveSummary(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, snapshots []domain.CountrySnapshot) error

	// LatestByISO3 возвращает последние сохранённые снимки по кодам стран.
	// Пустой список кодов - все страны.
	LatestByISO3(ctx context.Context, iso3 []string) ([]domain.ArchivedSnapshot, error)
}
