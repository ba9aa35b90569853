package importing

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the importing feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	app.Post("/import", handler.ImportFile)
	app.Get("/import/reports", handler.GetReports)
	app.Get("/import/reports/:id", handler.GetReport)
	app.Delete("/import/reports", handler.ClearReports)
	app.Get("/import/watcher", handler.GetWatcherStatus)
	app.Post("/import/watcher/toggle", handler.ToggleWatcher)
}
