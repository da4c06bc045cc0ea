package handler

import (
	stderrors "errors"

	"github.com/covid-stats/internal/pkg/errors"
	"github.com/covid-stats/internal/pkg/utils"
	"github.com/covid-stats/internal/pkg/validator"
	"github.com/covid-stats/internal/usecase"
	"github.com/covid-stats/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RefreshHandler - ручное обновление данных и чтение архива снимков
type RefreshHandler struct {
	refreshUC *usecase.RefreshUseCase
	logger    *zap.Logger
}

func NewRefreshHandler(refreshUC *usecase.RefreshUseCase, logger *zap.Logger) *RefreshHandler {
	return &RefreshHandler{
		refreshUC: refreshUC,
		logger:    logger,
	}
}

// Refresh godoc
// @Summary Refresh statistics
// @Description Загружает сводку и мировые ряды из API, заменяя текущие данные. force=true сначала сбрасывает кеш ответов API.
// @Tags Refresh
// @Produce json
// @Param force query bool false "Сбросить кеш перед загрузкой" default(false)
// @Success 200 {object} utils.SuccessResponse{data=dto.RefreshResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/refresh [post]
func (h *RefreshHandler) Refresh(c *fiber.Ctx) error {
	var q dto.RefreshQuery
	if err := c.QueryParser(&q); err != nil {
		return sendError(c, h.logger, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}

	refresh := h.refreshUC.RefreshAll
	if q.Force {
		refresh = h.refreshUC.ForceRefreshAll
	}

	result, err := refresh(c.UserContext())
	if err != nil {
		return sendError(c, h.logger, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetArchivedCountries godoc
// @Summary Latest archived snapshots
// @Description Последние сохранённые снимки по странам. Без iso3 возвращаются все страны.
// @Tags Archive
// @Produce json
// @Param iso3 query string false "ISO3 коды через запятую" example(USA,FRA)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ArchivedSnapshot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/archive/countries [get]
func (h *RefreshHandler) GetArchivedCountries(c *fiber.Ctx) error {
	req := dto.ArchiveRequest{ISO3: dto.ParseISO3List(c.Query("iso3"))}
	if err := validator.Validate(&req); err != nil {
		return sendError(c, h.logger, err)
	}

	result, err := h.refreshUC.LatestArchived(c.UserContext(), req.ISO3)
	if err != nil {
		if stderrors.Is(err, usecase.ErrArchiveDisabled) {
			return sendError(c, h.logger, err)
		}
		return sendError(c, h.logger, errors.ErrDatabaseError.WithDetails(map[string]interface{}{"reason": err.Error()}))
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
