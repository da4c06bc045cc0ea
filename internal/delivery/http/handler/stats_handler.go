package handler

import (
	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/pkg/errors"
	"github.com/covid-stats/internal/pkg/utils"
	"github.com/covid-stats/internal/pkg/validator"
	"github.com/covid-stats/internal/usecase"
	"github.com/covid-stats/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler отдаёт проекции сводки по странам
type StatsHandler struct {
	client *usecase.StatsClient
	logger *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(client *usecase.StatsClient, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		client: client,
		logger: logger,
	}
}

func (h *StatsHandler) parseView(c *fiber.Ctx) (domain.ViewState, error) {
	var q dto.ViewQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.ViewState{}, errors.ErrInvalidRequest.WithMessage("Invalid query parameters")
	}
	if err := validator.Validate(&q); err != nil {
		return domain.ViewState{}, err
	}
	return q.ToViewState()
}

// GetCountriesWithLocation godoc
// @Summary Countries with coordinates
// @Description Страны с координатами и значением выбранного индикатора для карты
// @Tags Countries
// @Produce json
// @Param global query bool false "Накопленные значения (true) или за сегодня (false)" default(true)
// @Param absolute query bool false "Абсолютные значения (true) или население/значение (false)" default(true)
// @Param indicator query string false "Индикатор" Enums(cases, death, recovered) default(cases)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CountryLocation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/countries/locations [get]
func (h *StatsHandler) GetCountriesWithLocation(c *fiber.Ctx) error {
	view, err := h.parseView(c)
	if err != nil {
		return sendError(c, h.logger, err)
	}

	result, err := h.client.CountriesWithLocation(view)
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result), View: view})
}

// GetCountriesAndCases godoc
// @Summary Countries with indicator value and flag
// @Description Значение выбранного индикатора и флаг по каждой стране
// @Tags Countries
// @Produce json
// @Param global query bool false "Накопленные значения (true) или за сегодня (false)" default(true)
// @Param absolute query bool false "Абсолютные значения (true) или население/значение (false)" default(true)
// @Param indicator query string false "Индикатор" Enums(cases, death, recovered) default(cases)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CountryValue}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/countries/values [get]
func (h *StatsHandler) GetCountriesAndCases(c *fiber.Ctx) error {
	view, err := h.parseView(c)
	if err != nil {
		return sendError(c, h.logger, err)
	}

	result, err := h.client.CountriesAndCases(view)
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result), View: view})
}

// GetDeaths godoc
// @Summary Cumulative deaths by country
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CountryDeaths}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/countries/deaths [get]
func (h *StatsHandler) GetDeaths(c *fiber.Ctx) error {
	result, err := h.client.DeathsByCountry()
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// GetRecovered godoc
// @Summary Cumulative recovered by country
// @Tags Countries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.CountryRecovered}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/countries/recovered [get]
func (h *StatsHandler) GetRecovered(c *fiber.Ctx) error {
	result, err := h.client.RecoveredByCountry()
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
