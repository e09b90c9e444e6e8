package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talent-scout-backend/config"
	"talent-scout-backend/controllers"
	"talent-scout-backend/db"
	sessionhandler "talent-scout-backend/lib/session"
	apimodels "talent-scout-backend/models/api"
	sessionapimodels "talent-scout-backend/models/api/session"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Post("candidate/delete", controller.delete)
	app.Get("privacy", controller.privacy)
	app.Get("health", controller.health)
}

// @Summary Удалить данные кандидата
// @Tags Кандидат
// @Description Удаляет все анкеты с указанной почтой и архив отправленных писем
// @Param	body				body		sessionapimodels.DeleteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.DeleteResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/delete [post]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	var payload sessionapimodels.DeleteRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := sessionhandler.Instance.DeleteCandidate(ctx.UserContext(), payload.Email)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sessionapimodels.DeleteResponse{
		Records:  result.Records,
		Archived: result.Archived,
	}))
}

// @Summary Политика обработки персональных данных
// @Tags Кандидат
// @Success 200 {object} apimodels.Response{data=sessionapimodels.PrivacyNotice}
// @router /api/v1/privacy [get]
func (c *candidateApiController) privacy(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sessionapimodels.PrivacyNotice{
		Storage:       "Your data is stored only with your consent and used to prepare interview questions.",
		RetentionDays: config.Conf.Privacy.RetentionDays,
		Deletion:      "You can delete your data at any time by submitting your email.",
		Contact:       config.Conf.Privacy.Contact,
	}))
}

// @Summary Проверка доступности
// @Tags Служебное
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *candidateApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
