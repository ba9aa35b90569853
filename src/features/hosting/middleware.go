package hosting

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an ID, reusing the caller's
// X-Request-ID when present.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals("request_id", id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

// LogAllRequestsMiddleware logs all requests, failures at error level
func LogAllRequestsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		if status >= 400 {
			slog.Error("HTTP request",
				"request_id", c.Locals("request_id"),
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"duration", duration.String(),
				"error", err,
			)
		} else {
			slog.Debug("HTTP request",
				"request_id", c.Locals("request_id"),
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"duration", duration.String(),
			)
		}
		return err
	}
}

func statusOf(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
