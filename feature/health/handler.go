package health

import (
	"bucket-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health probes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth reports bucket reachability.
// @Summary Health Check
// @Description Checks that the storage backend answers and the configured bucket exists.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "Bucket reachable"
// @Failure 503 {object} health.Report "Bucket unreachable"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	if err := h.service.Check(c.Context()); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(Report{
			Status: "unavailable",
			Error:  err.Error(),
		})
	}

	return c.JSON(Report{Status: "ok", Bucket: h.service.prober.Name()})
}
