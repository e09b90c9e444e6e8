package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	apimodels "talent-scout-backend/models/api"
)

// WithBodyLimit ограничивает размер JSON запросов, загрузка резюме ограничена только лимитом сервера
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasSuffix(c.Path(), "/resume") {
			return c.Next()
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > limit {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(
					fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)))
			}
		}

		return c.Next()
	}
}
