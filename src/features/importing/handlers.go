package importing

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the importing feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the importing feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ImportFile is the handler for importing a JSON collection.
func (h *Handler) ImportFile(c *fiber.Ctx) error {
	type ImportPathRequest struct {
		Path string `json:"path"`
	}
	var req ImportPathRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot parse request body",
		})
	}
	report, err := h.service.ReadReport(c.Context(), req.Path)
	if errors.Is(err, ErrInvalidFilepath) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		slog.Error("Error importing file", "path", req.Path, "error", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	slog.Info("ImportFile: collection imported", "import_id", report.ID, "accepted", len(report.Accepted))
	return c.JSON(report)
}

// GetReports lists the reports of past imports.
func (h *Handler) GetReports(c *fiber.Ctx) error {
	reports := h.service.Reports()
	if reports == nil {
		reports = []*Report{}
	}
	return c.JSON(reports)
}

// GetReport returns a single import report.
func (h *Handler) GetReport(c *fiber.Ctx) error {
	report, err := h.service.Report(c.Params("id"))
	if errors.Is(err, ErrReportNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// ClearReports forgets every stored report.
func (h *Handler) ClearReports(c *fiber.Ctx) error {
	if err := h.service.ClearReports(); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleWatcher toggles the file system watcher on/off
func (h *Handler) ToggleWatcher(c *fiber.Ctx) error {
	if h.service.WatcherRunning() {
		h.service.StopWatcher()
		slog.Info("Watcher stopped")
		return c.JSON(fiber.Map{"running": false})
	}
	// The watcher outlives the request, so it must not use the request context.
	if err := h.service.StartWatcher(h.service.baseContext()); err != nil {
		slog.Error("Failed to start watcher", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	slog.Info("Watcher started")
	return c.JSON(fiber.Map{"running": true})
}

// GetWatcherStatus returns the current status of the watcher
func (h *Handler) GetWatcherStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"running": h.service.WatcherRunning()})
}
