package main

// @title COVID-19 Stats API
// @version 1.0.0
// @description Сервис статистики COVID-19 поверх disease.sh: проекции сводки по странам для карты и таблиц, исторические ряды, переключение индикатора и архив снимков.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/covid-stats/docs"
	"github.com/covid-stats/internal/config"
	httpDelivery "github.com/covid-stats/internal/delivery/http"
	"github.com/covid-stats/internal/delivery/http/handler"
	"github.com/covid-stats/internal/domain/repository"
	"github.com/covid-stats/internal/infrastructure/diseasesh"
	"github.com/covid-stats/internal/pkg/logger"
	"github.com/covid-stats/internal/repository/cache"
	"github.com/covid-stats/internal/repository/postgres"
	"github.com/covid-stats/internal/usecase"
	"github.com/covid-stats/internal/worker"
	"github.com/covid-stats/internal/worker/refresh"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "covid-stats-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting COVID-19 Stats API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("disease_api", cfg.DiseaseAPI.BaseURL),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("archive_enabled", cfg.Archive.Enabled),
		zap.Bool("worker_enabled", cfg.Worker.Enabled),
	)

	checks := make(map[string]handler.HealthChecker)

	// 3. Statistics API client, optionally behind Redis
	var statsAPI repository.StatsAPIRepository = diseasesh.NewClient(&cfg.DiseaseAPI, log)

	var (
		redisClient *cache.Redis
		apiCache    *cache.StatsAPICache
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		checks["redis"] = redisClient

		apiCache = cache.NewStatsAPICache(
			statsAPI,
			cache.NewCacheRepository(redisClient),
			cfg.Cache.SummaryTTL,
			cfg.Cache.HistoricalTTL,
			log,
		)
		statsAPI = apiCache
		log.Info("Redis cache enabled")
	}

	// 4. Snapshot archive
	var (
		db      *postgres.DB
		archive repository.SnapshotRepository
	)
	if cfg.Archive.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		checks["postgres"] = db

		archive = postgres.NewSnapshotRepository(db, log)
		log.Info("Snapshot archive enabled")
	}

	// 5. Use cases
	statsClient := usecase.NewStatsClient(statsAPI, log)
	refreshUC := usecase.NewRefreshUseCase(statsClient, archive, log)
	if apiCache != nil {
		refreshUC.SetCacheInvalidator(apiCache)
	}

	// 6. Initial load. With the worker enabled it refreshes on start itself.
	var workerManager *worker.WorkerManager
	if cfg.Worker.Enabled {
		workerManager = worker.NewWorkerManager(log)
		workerManager.Register(refresh.NewRefreshWorker(refreshUC, cfg.Worker.RefreshInterval, log))
		checks["refresh_worker"] = workerManager
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := refreshUC.RefreshAll(ctx); err != nil {
			log.Warn("Initial refresh failed, data will be loaded on POST /api/v1/refresh", zap.Error(err))
		}
		cancel()
	}

	// 7. HTTP handlers and server
	server := httpDelivery.NewServer(cfg, log, httpDelivery.Handlers{
		Stats:     handler.NewStatsHandler(statsClient, log),
		Timeline:  handler.NewTimelineHandler(statsClient, refreshUC, log),
		Indicator: handler.NewIndicatorHandler(log),
		Refresh:   handler.NewRefreshHandler(refreshUC, log),
		Health:    handler.NewHealthHandler(checks, log),
	})

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	if workerManager != nil {
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	if workerManager != nil {
		cancelWorkers()
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
