package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/covid-stats/internal/config"
	"github.com/covid-stats/internal/domain/repository"
	"github.com/covid-stats/internal/infrastructure/diseasesh"
	"github.com/covid-stats/internal/pkg/logger"
	"github.com/covid-stats/internal/repository/postgres"
	"github.com/covid-stats/internal/usecase"
	"github.com/covid-stats/internal/worker"
	"github.com/covid-stats/internal/worker/refresh"
	"go.uber.org/zap"
)

// Standalone archiver: periodically fetches the summary and stores it in PostgreSQL.
// Redis is not used here, every run must see fresh upstream data.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "covid-stats-worker")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting COVID-19 Stats Refresh Worker")
	log.Info("Configuration loaded",
		zap.Duration("refresh_interval", cfg.Worker.RefreshInterval),
		zap.Bool("archive_enabled", cfg.Archive.Enabled))

	// 3. Connect to PostgreSQL
	var archive repository.SnapshotRepository
	if cfg.Archive.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		archive = postgres.NewSnapshotRepository(db, log)
	} else {
		log.Warn("Archive is disabled, worker will only log refresh results")
	}

	// 4. Initialize use cases
	statsClient := usecase.NewStatsClient(diseasesh.NewClient(&cfg.DiseaseAPI, log), log)
	refreshUC := usecase.NewRefreshUseCase(statsClient, archive, log)

	// 5. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(refresh.NewRefreshWorker(refreshUC, cfg.Worker.RefreshInterval, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
