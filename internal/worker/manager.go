package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 30 * time.Second

// healthReporter - воркер, умеющий сообщить о своем состоянии
type healthReporter interface {
	Health(ctx context.Context) error
}

// WorkerManager запускает воркеры, останавливает их и отдает их состояние в /health
type WorkerManager struct {
	workers         []Worker
	exited          map[string]error
	logger          *zap.Logger
	wg              sync.WaitGroup
	mu              sync.Mutex
	shutdownTimeout time.Duration
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:         make([]Worker, 0),
		exited:          make(map[string]error),
		logger:          logger,
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// SetShutdownTimeout меняет время ожидания в Stop
func (m *WorkerManager) SetShutdownTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shutdownTimeout = timeout
}

// Register регистрирует воркер
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}

// Start запускает каждый воркер в своей горутине и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go m.run(ctx, w)
	}

	return nil
}

func (m *WorkerManager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()

	m.logger.Info("Starting worker", zap.String("name", w.Name()))
	err := w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	m.mu.Lock()
	m.exited[w.Name()] = err
	m.mu.Unlock()

	if err != nil {
		m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
	}
}

// Health возвращает ошибку, если воркер завершился с ошибкой или сам сообщает о проблеме
func (m *WorkerManager) Health(ctx context.Context) error {
	for _, w := range m.snapshot() {
		m.mu.Lock()
		err, done := m.exited[w.Name()]
		m.mu.Unlock()

		if done {
			if err != nil {
				return fmt.Errorf("worker %s failed: %w", w.Name(), err)
			}
			return fmt.Errorf("worker %s is not running", w.Name())
		}

		if hr, ok := w.(healthReporter); ok {
			if err := hr.Health(ctx); err != nil {
				return fmt.Errorf("worker %s: %w", w.Name(), err)
			}
		}
	}
	return nil
}

// Stop сигнализирует воркерам об остановке и ждёт их завершения не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()
	m.mu.Lock()
	timeout := m.shutdownTimeout
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-time.After(timeout):
		m.logger.Warn("Workers shutdown timed out, a refresh may still be in flight",
			zap.Duration("timeout", timeout))
		return fmt.Errorf("workers shutdown timed out after %v", timeout)
	}
}
