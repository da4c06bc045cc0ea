package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/domain/repository"
	"github.com/covid-stats/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrArchiveDisabled возвращается при запросе архива без подключенной БД
	ErrArchiveDisabled = errors.New("snapshot archive is disabled")

	// ErrCacheInvalidation - не удалось сбросить кеш перед принудительным обновлением
	ErrCacheInvalidation = errors.New("cache invalidation failed")
)

// CacheInvalidator сбрасывает закешированные ответы API
type CacheInvalidator interface {
	Invalidate(ctx context.Context) (int, error)
}

// RefreshUseCase загружает свежие ответы API в StatsClient и,
// если настроен архив, сохраняет сводку в PostgreSQL
type RefreshUseCase struct {
	client      *StatsClient
	archive     repository.SnapshotRepository
	invalidator CacheInvalidator
	logger      *zap.Logger
	now         func() time.Time
}

// NewRefreshUseCase создает новый экземпляр RefreshUseCase. archive может быть nil.
func NewRefreshUseCase(
	client *StatsClient,
	archive repository.SnapshotRepository,
	logger *zap.Logger,
) *RefreshUseCase {
	return &RefreshUseCase{
		client:  client,
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// SetCacheInvalidator подключает кеш, который ForceRefreshAll сбрасывает перед загрузкой
func (uc *RefreshUseCase) SetCacheInvalidator(invalidator CacheInvalidator) {
	uc.invalidator = invalidator
}

// RefreshSummary загружает сводку, заменяет её в клиенте и архивирует
func (uc *RefreshUseCase) RefreshSummary(ctx context.Context) (*dto.RefreshResponse, error) {
	summary, err := uc.client.FetchSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh summary: %w", err)
	}
	uc.client.SetSummary(summary)

	result := &dto.RefreshResponse{
		RunID:       uuid.New(),
		Countries:   len(summary),
		RefreshedAt: uc.now().UTC(),
	}

	if uc.archive != nil {
		if err := uc.archive.SaveSummary(ctx, result.RunID, result.RefreshedAt, summary); err != nil {
			// Сводка уже в клиенте, архив не критичен
			uc.logger.Warn("Failed to archive summary",
				zap.String("run_id", result.RunID.String()),
				zap.Error(err))
		} else {
			result.Archived = true
		}
	}

	uc.logger.Info("Summary refreshed",
		zap.String("run_id", result.RunID.String()),
		zap.Int("countries", result.Countries),
		zap.Bool("archived", result.Archived))
	return result, nil
}

// RefreshGlobal загружает мировые ряды и заменяет их в клиенте.
// Возвращает число дат в объединённом ряду.
func (uc *RefreshUseCase) RefreshGlobal(ctx context.Context) (int, error) {
	global, err := uc.client.FetchGlobalHistorical(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh global historical: %w", err)
	}
	uc.client.SetGlobalHistorical(global)

	days := len(global.Timeline.Merge())
	uc.logger.Info("Global historical refreshed", zap.Int("days", days))
	return days, nil
}

// RefreshAll обновляет сводку и мировые ряды. Ошибка на любом шаге прерывает обновление.
func (uc *RefreshUseCase) RefreshAll(ctx context.Context) (*dto.RefreshResponse, error) {
	result, err := uc.RefreshSummary(ctx)
	if err != nil {
		return nil, err
	}

	days, err := uc.RefreshGlobal(ctx)
	if err != nil {
		return nil, err
	}
	result.GlobalDays = days

	return result, nil
}

// ForceRefreshAll сбрасывает кеш ответов API (если он подключен) и выполняет RefreshAll
func (uc *RefreshUseCase) ForceRefreshAll(ctx context.Context) (*dto.RefreshResponse, error) {
	if uc.invalidator != nil {
		n, err := uc.invalidator.Invalidate(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCacheInvalidation, err)
		}
		uc.logger.Debug("Cache invalidated before refresh", zap.Int("keys", n))
	}
	return uc.RefreshAll(ctx)
}

// RefreshCountry загружает ряды страны, заменяет их в клиенте и возвращает
// полученный ответ, чтобы вызывающий не зависел от параллельных обновлений
func (uc *RefreshUseCase) RefreshCountry(ctx context.Context, country string) (*dto.CountryTimelineResponse, error) {
	hist, err := uc.client.FetchHistorical(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("refresh country historical: %w", err)
	}
	uc.client.SetCountryHistorical(hist)

	return &dto.CountryTimelineResponse{
		Country:  hist.Country,
		Province: hist.Province,
		Timeline: hist.Timeline.Merge(),
	}, nil
}

// LatestArchived возвращает последние архивные снимки по кодам стран
func (uc *RefreshUseCase) LatestArchived(ctx context.Context, iso3 []string) ([]domain.ArchivedSnapshot, error) {
	if uc.archive == nil {
		return nil, ErrArchiveDisabled
	}

	snapshots, err := uc.archive.LatestByISO3(ctx, iso3)
	if err != nil {
		return nil, fmt.Errorf("latest archived snapshots: %w", err)
	}
	return snapshots, nil
}
