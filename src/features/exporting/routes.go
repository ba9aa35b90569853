package exporting

import (
	"github.com/contre95/mediashelf/src/media"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the exporting feature.
func RegisterRoutes(app *fiber.App, service *Service, lib media.Library) {
	handler := NewHandler(service, lib)

	app.Post("/export", handler.ExportLibrary)
}
