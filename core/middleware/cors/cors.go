package cors

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	allowMethods = "GET, POST, OPTIONS"
	allowHeaders = "Content-Type"
)

// Config holds the CORS policy.
type Config struct {
	// Origin is the single allowed origin echoed in Access-Control-Allow-Origin.
	Origin string
}

// New returns a middleware applying a fixed CORS policy.
//
// OPTIONS requests are answered directly with an empty text/plain body.
// Other responses get the headers only when their content type is JSON or
// plain text, so static assets such as the Swagger UI are left untouched.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			setHeaders(c, cfg)
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.Status(fiber.StatusOK).SendString("")
		}

		err := c.Next()
		if err != nil {
			// Let the error handler write the body first.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				return herr
			}
		}

		ct := string(c.Response().Header.ContentType())
		if strings.HasPrefix(ct, fiber.MIMEApplicationJSON) || strings.HasPrefix(ct, fiber.MIMETextPlain) {
			setHeaders(c, cfg)
		}
		return nil
	}
}

func setHeaders(c *fiber.Ctx, cfg Config) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.Origin)
	c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
	c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
}
