package catalog

import (
	"errors"

	"bucket-catalog/core/logger"
	"bucket-catalog/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgNoName       = "Encountered bucket objects with no name"
	msgMultipleTags = "Encountered a file with a more than one tag named 'tags'"
	msgBackend      = "Storage backend request failed"
	msgInternal     = "Internal Server Error"
)

// Handler handles HTTP requests for the bucket catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/contents", h.HandleGetContents)
}

// HandleGetContents lists the bucket.
// @Summary List Bucket Contents
// @Description Lists every file of the bucket with its tags, checksum and a 30 minute presigned URL. Folder markers are skipped.
// @Tags catalog
// @Produce json
// @Param filter query string false "Case-sensitive substring matched against file name and tags"
// @Success 200 {object} catalog.Contents "Bucket Contents"
// @Failure 500 {string} string "Taxonomy violation"
// @Failure 502 {string} string "Storage backend request failed"
// @Router /contents [get]
func (h *Handler) HandleGetContents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	term := c.Query("filter")

	contents, err := h.service.Contents(c.Context(), term)
	if err != nil {
		status, msg := statusFor(err)
		l.Error("Listing bucket contents failed",
			zap.String("filter", term),
			zap.Int("status", status),
			zap.Error(err),
		)
		return c.Status(status).SendString(msg)
	}

	return c.JSON(contents)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrFileWithNoName):
		return fiber.StatusInternalServerError, msgNoName
	case errors.Is(err, ErrMultipleTagsWithSameName):
		return fiber.StatusInternalServerError, msgMultipleTags
	case storage.IsBackendError(err):
		return fiber.StatusBadGateway, msgBackend
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}
