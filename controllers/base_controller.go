package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("could not read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(ctx.Params("id"))
	if id == "" {
		return "", errors.New("id is not specified")
	}
	return id, nil
}
