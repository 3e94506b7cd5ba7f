package cors_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"bucket-catalog/core/middleware/cors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(cors.New(cors.Config{Origin: "http://localhost:3000"}))
	app.Get("/json", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": []string{}})
	})
	app.Get("/text", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).SendString("failure")
	})
	app.Get("/html", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
		return c.SendString("<p>hi</p>")
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad")
	})
	return app
}

func assertCORS(t *testing.T, h func(string) string) {
	t.Helper()
	assert.Equal(t, "http://localhost:3000", h("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", h("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", h("Access-Control-Allow-Credentials"))
}

func TestCORS(t *testing.T) {
	app := setupApp()

	t.Run("Options", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("OPTIONS", "/contents", nil))
		require.NoError(t, err)

		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
		body, _ := io.ReadAll(resp.Body)
		assert.Empty(t, body)
		assertCORS(t, resp.Header.Get)
	})

	t.Run("JSON", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/json", nil))
		require.NoError(t, err)
		assertCORS(t, resp.Header.Get)
	})

	t.Run("PlainText", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/text", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assertCORS(t, resp.Header.Get)
	})

	t.Run("ErrorHandler", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/error", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assertCORS(t, resp.Header.Get)
	})

	t.Run("HTMLUntouched", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/html", nil))
		require.NoError(t, err)
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
