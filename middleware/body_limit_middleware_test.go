package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(16))
	handler := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Post("/session/:id/manual", handler)
	app.Post("/session/:id/resume", handler)

	t.Run(`small body check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/session/1/manual", strings.NewReader(`{}`)))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`large body check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/session/1/manual", strings.NewReader(strings.Repeat("a", 64))))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run(`resume upload skipped check`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/session/1/resume", strings.NewReader(strings.Repeat("a", 64))))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
