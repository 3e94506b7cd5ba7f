package upload

import (
	"errors"

	"bucket-catalog/core/logger"
	"bucket-catalog/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgUploaded     = "Image Uploaded"
	msgNotMultipart = "Content-Type not multipart/form-data"
	msgNoBoundary   = "`Content-Type: multipart/form-data` boundary param not provided"
	msgBadForm      = "Unable to read multipart form"
	msgBadTags      = "Tags must be valid UTF-8 of at most 256 characters"
	msgPartial      = "File stored but its tags could not be written"
	msgBackend      = "Storage backend request failed"
	msgFailed       = "Upload failed"
)

// Handler handles HTTP requests for uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/upload", h.HandleUpload)
}

// HandleUpload stores a file with its tag string.
// @Summary Upload File
// @Description Stores the file part under fileName (overwriting any existing object) and replaces its tags with {"tags": tags}.
// @Tags upload
// @Accept multipart/form-data
// @Produce plain
// @Param fileName formData string true "Object name"
// @Param tags formData string false "Comma separated tag string"
// @Param file formData file true "File content"
// @Success 200 {string} string "Image Uploaded"
// @Failure 400 {string} string "Invalid content type or tags"
// @Failure 500 {string} string "Malformed form"
// @Failure 502 {string} string "Storage backend request failed"
// @Router /upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if _, err := CheckContentType(c.Get(fiber.HeaderContentType)); err != nil {
		msg := msgNotMultipart
		if errors.Is(err, ErrMissingBoundary) {
			msg = msgNoBoundary
		}
		l.Warn("Rejected upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}

	form, err := c.MultipartForm()
	if err != nil {
		l.Error("Failed to parse multipart form", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString(msgBadForm)
	}

	sub, err := ParseForm(form)
	if err != nil {
		l.Error("Failed to decode upload form", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString(msgBadForm)
	}

	if err := h.service.Upload(c.Context(), sub.FileName, sub.Data, sub.Tags); err != nil {
		l.Error("Upload failed", zap.String("file", sub.FileName), zap.Error(err))
		switch {
		case errors.Is(err, ErrInvalidTags):
			return c.Status(fiber.StatusBadRequest).SendString(msgBadTags)
		case errors.Is(err, ErrPartialUpload):
			return c.Status(fiber.StatusBadGateway).SendString(msgPartial)
		case storage.IsBackendError(err):
			return c.Status(fiber.StatusBadGateway).SendString(msgBackend)
		default:
			return c.Status(fiber.StatusInternalServerError).SendString(msgFailed)
		}
	}

	return c.Status(fiber.StatusOK).SendString(msgUploaded)
}
