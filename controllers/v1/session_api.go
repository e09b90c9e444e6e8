package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/controllers"
	"talent-scout-backend/lib/intake"
	sessionhandler "talent-scout-backend/lib/session"
	apimodels "talent-scout-backend/models/api"
	sessionapimodels "talent-scout-backend/models/api/session"
)

type sessionApiController struct {
	controllers.BaseAPIController
}

func InitSessionApiRouters(app *fiber.App) {
	controller := sessionApiController{}
	app.Route("session", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.view)
			idRouter.Delete("", controller.discard)
			idRouter.Post("manual", controller.submitManual)
			idRouter.Post("resume", controller.uploadResume)          // разбор резюме, данные для подтверждения
			idRouter.Post("resume/confirm", controller.confirmResume) // подтвержденная анкета из резюме
			idRouter.Post("regenerate", controller.regenerate)
			idRouter.Post("email", controller.email)
			idRouter.Get("download/:format", controller.download)
			idRouter.Post("finish", controller.finish)
		})
	})
}

// @Summary Начать сессию
// @Tags Сессия
// @Success 201 {object} apimodels.Response{data=sessionhandler.View}
// @router /api/v1/session [post]
func (c *sessionApiController) create(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(sessionhandler.Instance.Create()))
}

// @Summary Текущий этап сессии
// @Tags Сессия
// @Description При отсутствии вопросов на этапе генерации запускает генерацию
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 404 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=sessionhandler.View}
// @router /api/v1/session/{id} [get]
func (c *sessionApiController) view(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sessionhandler.Instance.View(ctx.UserContext(), id)
	return c.sendView(ctx, view, err)
}

// @Summary Завершить сессию без сохранения
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/session/{id} [delete]
func (c *sessionApiController) discard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = sessionhandler.Instance.Discard(ctx.UserContext(), id); err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправить анкету
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Param	body				body		sessionapimodels.ManualForm	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 400 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=sessionhandler.View}
// @router /api/v1/session/{id}/manual [post]
func (c *sessionApiController) submitManual(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload sessionapimodels.ManualForm
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sessionhandler.Instance.SubmitManual(ctx.UserContext(), id, payload.ToRecord())
	return c.sendView(ctx, view, err)
}

// @Summary Загрузить резюме
// @Tags Сессия
// @Description Возвращает найденные навыки, роль и почту для подтверждения
// @Param   id          		path    string  				    	true         "ID сессии"
// @Param   resume		formData	file 	true 	"PDF, DOCX или TXT"
// @Success 200 {object} apimodels.Response{data=sessionhandler.ResumeResult}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/session/{id}/resume [post]
func (c *sessionApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("Ошибка при получении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("Ошибка при загрузке файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := sessionhandler.Instance.UploadResume(ctx.UserContext(), id, file.Filename, fileBody)
	if err != nil {
		return sendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Подтвердить данные из резюме
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Param	body				body		sessionapimodels.ResumeConfirmForm	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 400 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=sessionhandler.View}
// @router /api/v1/session/{id}/resume/confirm [post]
func (c *sessionApiController) confirmResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload sessionapimodels.ResumeConfirmForm
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sessionhandler.Instance.ConfirmResume(ctx.UserContext(), id, payload.ToRecord())
	return c.sendView(ctx, view, err)
}

// @Summary Сгенерировать вопросы заново
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=sessionhandler.View}
// @router /api/v1/session/{id}/regenerate [post]
func (c *sessionApiController) regenerate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sessionhandler.Instance.Regenerate(ctx.UserContext(), id)
	return c.sendView(ctx, view, err)
}

// @Summary Отправить вопросы на почту кандидата
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 400 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 409 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=sessionhandler.View}
// @router /api/v1/session/{id}/email [post]
func (c *sessionApiController) email(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sessionhandler.Instance.Email(ctx.UserContext(), id)
	return c.sendView(ctx, view, err)
}

// @Summary Скачать вопросы
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Param   format          	path    string  				    	true         "pdf или xlsx"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/session/{id}/download/{format} [get]
func (c *sessionApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	format := intake.DocumentFormat(ctx.Params("format"))
	doc, err := sessionhandler.Instance.Download(ctx.UserContext(), id, format)
	if err != nil {
		return sendError(ctx, err)
	}
	ctx.Attachment(doc.FileName)
	ctx.Set(fiber.HeaderContentType, doc.ContentType)
	return ctx.Status(fiber.StatusOK).Send(doc.Body)
}

// @Summary Завершить интервью
// @Tags Сессия
// @Param   id          		path    string  				    	true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=sessionhandler.View}
// @Failure 409 {object} apimodels.Response
// @router /api/v1/session/{id}/finish [post]
func (c *sessionApiController) finish(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := sessionhandler.Instance.Finish(ctx.UserContext(), id)
	return c.sendView(ctx, view, err)
}

func (c *sessionApiController) sendView(ctx *fiber.Ctx, view sessionhandler.View, err error) error {
	if err != nil {
		if view.ID == "" {
			return sendError(ctx, err)
		}
		return sendErrorWithData(ctx, err, view)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
