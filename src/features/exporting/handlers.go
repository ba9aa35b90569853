package exporting

import (
	"errors"
	"log/slog"

	"github.com/contre95/mediashelf/src/media"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the exporting feature.
type Handler struct {
	service *Service
	library media.Library
}

// NewHandler creates a new handler for the exporting feature.
func NewHandler(service *Service, lib media.Library) *Handler {
	return &Handler{service: service, library: lib}
}

// ExportLibrary writes the whole library, or the records matching a search
// term, to the requested path.
func (h *Handler) ExportLibrary(c *fiber.Ctx) error {
	type ExportRequest struct {
		Path   string `json:"path"`
		Term   string `json:"term"`
		Policy string `json:"policy"`
	}
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot parse request body",
		})
	}

	policy := h.service.DefaultPolicy()
	if req.Policy != "" {
		parsed, err := ParsePolicy(req.Policy)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		policy = parsed
	}

	records := h.library.All()
	if req.Term != "" {
		records = h.library.Search(req.Term)
	}

	written, err := h.service.Write(c.Context(), req.Path, records, policy)
	if errors.Is(err, ErrFileExists) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		slog.Error("Error exporting library", "path", req.Path, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"path": written, "records": len(records)})
}
