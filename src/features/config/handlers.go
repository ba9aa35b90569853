package config

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	configManager *Manager
}

// NewHandler creates a new handler for the config feature.
func NewHandler(configManager *Manager) *Handler {
	return &Handler{
		configManager: configManager,
	}
}

// GetConfig returns the running configuration, as YAML when ?format=yaml.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	slog.Debug("GetConfig handler called", "format", c.Query("format"))
	if c.Query("format") == "yaml" {
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.SendString(h.configManager.GetYAML())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(h.configManager.GetJSON())
}

// UpdateConfig applies a YAML document to the running configuration and
// persists it. Settings read at startup, such as the server port, take
// effect on the next start.
func (h *Handler) UpdateConfig(c *fiber.Ctx) error {
	slog.Debug("UpdateConfig handler called", "bytes", len(c.Body()))
	cfg, err := h.configManager.Apply(c.Body())
	if errors.Is(err, ErrInvalidConfig) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		slog.Error("Failed to update configuration", "error", err)
		return err
	}
	slog.Info("Configuration updated via API")
	return c.JSON(cfg)
}
