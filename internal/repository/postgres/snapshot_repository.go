package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// insertBatchSize ограничивает число строк в одном INSERT (лимит параметров PostgreSQL - 65535)
const insertBatchSize = 500

const insertSnapshotSQL = `
	INSERT INTO country_snapshots (
		run_id, country, iso3,
		cases, today_cases, deaths, today_deaths, recovered, today_recovered,
		population, fetched_at
	) VALUES (
		:run_id, :country, :iso3,
		:cases, :today_cases, :deaths, :today_deaths, :recovered, :today_recovered,
		:population, :fetched_at
	)`

const selectLatestSQL = `
	SELECT DISTINCT ON (iso3)
		run_id, country, iso3,
		cases, today_cases, deaths, today_deaths, recovered, today_recovered,
		population, fetched_at
	FROM country_snapshots`

type snapshotRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSnapshotRepository создает репозиторий архива снимков
func NewSnapshotRepository(db *DB, logger *zap.Logger) repository.SnapshotRepository {
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSummary сохраняет снимок всех стран в одной транзакции
func (r *snapshotRepository) SaveSummary(
	ctx context.Context,
	runID uuid.UUID,
	fetchedAt time.Time,
	snapshots []domain.CountrySnapshot,
) error {
	if len(snapshots) == 0 {
		return nil
	}

	rows := make([]domain.ArchivedSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		rows = append(rows, domain.NewArchivedSnapshot(runID, fetchedAt, s))
	}

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for start := 0; start < len(rows); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(rows) {
				end = len(rows)
			}
			if _, err := tx.NamedExecContext(ctx, insertSnapshotSQL, rows[start:end]); err != nil {
				r.logger.Error("failed to insert snapshots",
					zap.String("run_id", runID.String()),
					zap.Int("batch_start", start),
					zap.Error(err))
				return fmt.Errorf("insert snapshots: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Summary archived",
		zap.String("run_id", runID.String()),
		zap.Int("countries", len(rows)))
	return nil
}

// LatestByISO3 возвращает последний снимок по каждой стране
func (r *snapshotRepository) LatestByISO3(ctx context.Context, iso3 []string) ([]domain.ArchivedSnapshot, error) {
	query := selectLatestSQL
	var args []interface{}
	if len(iso3) > 0 {
		query += ` WHERE iso3 = ANY($1)`
		args = append(args, pq.Array(iso3))
	}
	query += ` ORDER BY iso3, fetched_at DESC`

	var snapshots []domain.ArchivedSnapshot
	if err := r.db.SelectContext(ctx, &snapshots, query, args...); err != nil {
		r.logger.Error("failed to select latest snapshots", zap.Strings("iso3", iso3), zap.Error(err))
		return nil, fmt.Errorf("select latest snapshots: %w", err)
	}

	return snapshots, nil
}
