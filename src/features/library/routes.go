package library

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the library feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	api := app.Group("/library")
	api.Get("/records", handler.GetRecords)
	api.Get("/search", handler.Search)
	api.Get("/search/metadata", handler.SearchMetadata)
	api.Get("/filter", handler.Filter)
	api.Post("/records/:index/metadata", handler.AddMetadata)
	api.Delete("/records/:index/metadata/:key", handler.RemoveRecordField)
	api.Delete("/metadata", handler.RemoveMetadata)
}
