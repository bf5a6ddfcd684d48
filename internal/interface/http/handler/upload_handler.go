package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/portfolio-backend/internal/media"
)

const defaultCollection = "editor"

// UploadHandler stores files dropped into rich text editors and returns
// where they can be fetched from.
type UploadHandler struct {
	uploads media.Uploader
}

func NewUploadHandler(uploads media.Uploader) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

func (h *UploadHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/uploads", h.Store)
}

func (h *UploadHandler) Store(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, "file", "file is a required field")
	}

	collection := c.FormValue("collection", defaultCollection)
	stored, err := h.uploads.Save(header, collection)
	switch {
	case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrTooLarge):
		return writeError(c, fiber.StatusUnprocessableEntity, "file", err.Error())
	case err != nil:
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func writeError(c *fiber.Ctx, status int, field, message string) error {
	return c.Status(status).JSON(errorResponse{
		Message: message,
		Errors:  map[string]string{field: message},
	})
}
