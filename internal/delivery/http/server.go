package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/covid-stats/internal/config"
	"github.com/covid-stats/internal/delivery/http/handler"
	"github.com/covid-stats/internal/delivery/http/middleware"
	"github.com/covid-stats/internal/pkg/errors"
	"github.com/covid-stats/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор HTTP обработчиков сервера
type Handlers struct {
	Stats     *handler.StatsHandler
	Timeline  *handler.TimelineHandler
	Indicator *handler.IndicatorHandler
	Refresh   *handler.RefreshHandler
	Health    *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "COVID-19 Stats API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Проекции сводки
	countries := api.Group("/countries")
	countries.Get("/locations", s.handlers.Stats.GetCountriesWithLocation)
	countries.Get("/values", s.handlers.Stats.GetCountriesAndCases)
	countries.Get("/deaths", s.handlers.Stats.GetDeaths)
	countries.Get("/recovered", s.handlers.Stats.GetRecovered)

	// Исторические ряды
	timeline := api.Group("/timeline")
	timeline.Get("/global", s.handlers.Timeline.GetGlobalTimeline)
	timeline.Get("/countries/:country", s.handlers.Timeline.GetCountryTimeline)

	api.Post("/indicator/advance", s.handlers.Indicator.AdvanceIndicator)

	api.Post("/refresh", s.handlers.Refresh.Refresh)
	api.Get("/archive/countries", s.handlers.Refresh.GetArchivedCountries)
}

// App возвращает fiber приложение, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler отдаёт ошибки fiber (404, 405, паники) в формате utils.ErrorResponse
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		appErr := errors.ErrInternalServer

		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
			appErr = errors.New(httpCode(code), fe.Message, code)
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return utils.SendError(c, appErr)
	}
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return errors.CodeInvalidRequest
	default:
		return errors.CodeInternal
	}
}
