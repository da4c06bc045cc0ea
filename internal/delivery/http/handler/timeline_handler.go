package handler

import (
	"net/url"
	"strings"

	"github.com/covid-stats/internal/pkg/errors"
	"github.com/covid-stats/internal/pkg/utils"
	"github.com/covid-stats/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TimelineHandler struct {
	client    *usecase.StatsClient
	refreshUC *usecase.RefreshUseCase
	logger    *zap.Logger
}

func NewTimelineHandler(
	client *usecase.StatsClient,
	refreshUC *usecase.RefreshUseCase,
	logger *zap.Logger,
) *TimelineHandler {
	return &TimelineHandler{
		client:    client,
		refreshUC: refreshUC,
		logger:    logger,
	}
}

// GetGlobalTimeline godoc
// @Summary Worldwide timeline
// @Description Мировые ряды cases/deaths/recovered, объединённые по датам
// @Tags Timeline
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TimelinePoint}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/timeline/global [get]
func (h *TimelineHandler) GetGlobalTimeline(c *fiber.Ctx) error {
	result, err := h.client.GlobalTimeline()
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// GetCountryTimeline godoc
// @Summary Country timeline
// @Description Загружает исторические ряды страны из API и возвращает их, объединённые по датам
// @Tags Timeline
// @Produce json
// @Param country path string true "Название страны или ISO код"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryTimelineResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/timeline/countries/{country} [get]
func (h *TimelineHandler) GetCountryTimeline(c *fiber.Ctx) error {
	country, err := url.PathUnescape(c.Params("country"))
	if err != nil || strings.TrimSpace(country) == "" {
		return sendError(c, h.logger, errors.ErrInvalidRequest.WithMessage("Country is required"))
	}

	result, err := h.refreshUC.RefreshCountry(c.UserContext(), strings.TrimSpace(country))
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Timeline)})
}
