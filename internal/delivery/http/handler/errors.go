package handler

import (
	"context"
	stderrors "errors"

	"github.com/covid-stats/internal/infrastructure/diseasesh"
	"github.com/covid-stats/internal/pkg/errors"
	"github.com/covid-stats/internal/pkg/utils"
	"github.com/covid-stats/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// toAppError переводит ошибки use case слоя в ответы API
func toAppError(err error) *errors.AppError {
	var appErr *errors.AppError
	switch {
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.Is(err, usecase.ErrSummaryNotLoaded),
		stderrors.Is(err, usecase.ErrGlobalNotLoaded),
		stderrors.Is(err, usecase.ErrCountryNotLoaded):
		return errors.ErrDataNotLoaded.WithMessage(err.Error())
	case stderrors.Is(err, usecase.ErrArchiveDisabled):
		return errors.ErrArchiveDisabled
	case stderrors.Is(err, usecase.ErrCacheInvalidation):
		return errors.ErrCacheError.WithDetails(map[string]interface{}{"reason": err.Error()})
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.ErrUpstream.WithMessage("Statistics API request timed out")
	case stderrors.Is(err, diseasesh.ErrUpstream),
		stderrors.Is(err, diseasesh.ErrUnavailable),
		stderrors.Is(err, diseasesh.ErrBadResponse):
		return errors.ErrUpstream.WithDetails(map[string]interface{}{"reason": err.Error()})
	default:
		return errors.ErrInternalServer
	}
}

func sendError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	appErr := toAppError(err)
	if appErr.StatusCode >= fiber.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("path", c.Path()),
			zap.String("code", appErr.Code),
			zap.Error(err))
	} else {
		logger.Debug("Request rejected",
			zap.String("path", c.Path()),
			zap.String("code", appErr.Code),
			zap.Error(err))
	}
	return utils.SendError(c, appErr)
}
