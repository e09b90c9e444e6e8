package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"talent-scout-backend/lib/intake"
	sessionhandler "talent-scout-backend/lib/session"
	apimodels "talent-scout-backend/models/api"
)

func errorStatus(err error) int {
	switch {
	case intake.IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, sessionhandler.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, intake.ErrInvalidTransition), errors.Is(err, sessionhandler.ErrSessionBusy):
		return fiber.StatusConflict
	case intake.IsGeneration(err), intake.IsDelivery(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(errorStatus(err)).JSON(apimodels.NewError(err.Error()))
}

// sendErrorWithData ошибка действия вместе с текущим состоянием сессии
func sendErrorWithData(ctx *fiber.Ctx, err error, data interface{}) error {
	resp := apimodels.NewError(err.Error())
	resp.Data = data
	return ctx.Status(errorStatus(err)).JSON(resp)
}
