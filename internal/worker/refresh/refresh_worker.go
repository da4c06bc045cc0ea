package refresh

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/covid-stats/internal/usecase/dto"
	"github.com/covid-stats/internal/worker"
	"go.uber.org/zap"
)

// Refresher - источник обновления данных, реализуется usecase.RefreshUseCase
type Refresher interface {
	RefreshAll(ctx context.Context) (*dto.RefreshResponse, error)
}

// RefreshWorker периодически загружает сводку и мировые ряды.
// Первое обновление выполняется сразу при старте.
type RefreshWorker struct {
	*worker.BaseWorker
	refresher   Refresher
	failures    atomic.Int32
	lastSuccess atomic.Int64
}

// unhealthyAfter - число подряд неудачных обновлений, после которого воркер нездоров
const unhealthyAfter = 3

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker("stats-refresh", interval, logger),
		refresher:  refresher,
	}
}

// Start запускает цикл обновления
func (w *RefreshWorker) Start(ctx context.Context) error {
	if w.Interval() <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", w.Interval())
	}

	logger := w.Logger()
	logger.Info("Starting RefreshWorker", zap.Duration("interval", w.Interval()))

	// Stop прерывает и текущий запрос к API
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-ctx.Done():
		}
	}()

	w.runOnce(ctx)

	ticker := time.NewTicker(w.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			if w.IsStopped() {
				logger.Info("Worker stopped")
				return nil
			}
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *RefreshWorker) runOnce(ctx context.Context) {
	logger := w.Logger()
	start := time.Now()

	result, err := w.refresher.RefreshAll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		failures := w.failures.Add(1)
		logger.Error("Refresh failed",
			zap.Int32("consecutive_failures", failures),
			zap.Error(err))
		return
	}

	w.failures.Store(0)
	w.lastSuccess.Store(time.Now().UnixNano())
	logger.Info("Refresh completed",
		zap.String("run_id", result.RunID.String()),
		zap.Int("countries", result.Countries),
		zap.Int("global_days", result.GlobalDays),
		zap.Bool("archived", result.Archived),
		zap.Duration("duration", time.Since(start)))
}

// Health сообщает о проблеме после unhealthyAfter неудачных обновлений подряд
func (w *RefreshWorker) Health(ctx context.Context) error {
	failures := w.failures.Load()
	if failures < unhealthyAfter {
		return nil
	}

	last := "never"
	if ns := w.lastSuccess.Load(); ns > 0 {
		last = time.Unix(0, ns).UTC().Format(time.RFC3339)
	}
	return fmt.Errorf("%d consecutive refresh failures, last success: %s", failures, last)
}
