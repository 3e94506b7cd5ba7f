package server

import "github.com/gofiber/fiber/v2"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// CorsOrigin is the single origin allowed to call the API from a browser.
	CorsOrigin string `mapstructure:"cors_origin" default:"http://localhost:3000"`
	// BodyLimitMB caps the request body size (uploads) in megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

// BodyLimit returns the body limit in bytes, falling back to 32 MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 32 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// Fiber returns the settings the HTTP server runs with.
// Multipart bodies are left to the handlers instead of being pre-parsed by
// fasthttp, so a malformed form reaches the upload handler and its error
// response passes through the middleware chain.
func (c Config) Fiber() fiber.Config {
	return fiber.Config{
		BodyLimit:                    c.BodyLimit(),
		DisableStartupMessage:        true,
		DisablePreParseMultipartForm: true,
	}
}
