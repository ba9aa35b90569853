package hosting

import (
	"fmt"
	"log/slog"

	"github.com/contre95/mediashelf/src/features/config"
	"github.com/contre95/mediashelf/src/features/exporting"
	"github.com/contre95/mediashelf/src/features/importing"
	"github.com/contre95/mediashelf/src/features/library"
	"github.com/contre95/mediashelf/src/features/metrics"
	"github.com/contre95/mediashelf/src/media"
	"github.com/gofiber/fiber/v2"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server. m may be nil when metrics are disabled.
func NewServer(cfg *config.Manager, lib media.Library, importingService *importing.Service, exportingService *exporting.Service, libraryService *library.Service, m *metrics.Metrics) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := statusOf(err)
			if status >= fiber.StatusInternalServerError {
				slog.Error("Internal Server Error", "error", err)
			}
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		},
		AppName:               "Mediashelf",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(RequestIDMiddleware())
	app.Use(LogAllRequestsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	config.RegisterRoutes(app, cfg)
	library.RegisterRoutes(app, libraryService)
	importing.RegisterRoutes(app, importingService)
	exporting.RegisterRoutes(app, exportingService, lib)
	if m != nil {
		metrics.RegisterRoutes(app, m)
	}

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// App exposes the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
