package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the Prometheus scrape endpoint.
func RegisterRoutes(app *fiber.App, m *Metrics) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
}
