package handler

import (
	"github.com/covid-stats/internal/domain"
	"github.com/covid-stats/internal/pkg/errors"
	"github.com/covid-stats/internal/pkg/utils"
	"github.com/covid-stats/internal/pkg/validator"
	"github.com/covid-stats/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IndicatorHandler переключает индикатор карты. Состояние хранит клиент,
// сервер только вычисляет следующий индикатор.
type IndicatorHandler struct {
	logger *zap.Logger
}

func NewIndicatorHandler(logger *zap.Logger) *IndicatorHandler {
	return &IndicatorHandler{logger: logger}
}

// AdvanceIndicator godoc
// @Summary Advance indicator
// @Description Сдвигает индикатор на одну позицию в порядке cases, death, recovered. На краях индикатор не меняется.
// @Tags Indicator
// @Accept json
// @Produce json
// @Param request body dto.AdvanceIndicatorRequest true "Текущий индикатор и направление"
// @Success 200 {object} utils.SuccessResponse{data=dto.AdvanceIndicatorResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/indicator/advance [post]
func (h *IndicatorHandler) AdvanceIndicator(c *fiber.Ctx) error {
	var req dto.AdvanceIndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, h.logger, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return sendError(c, h.logger, err)
	}

	current, err := domain.ParseIndicator(req.Indicator)
	if err != nil {
		return sendError(c, h.logger, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	next, label := domain.DefaultViewState().WithIndicator(current).AdvanceIndicator(req.Direction)

	return utils.SendSuccess(c, dto.AdvanceIndicatorResponse{
		Indicator: next.Indicator,
		Label:     label,
	}, nil)
}
