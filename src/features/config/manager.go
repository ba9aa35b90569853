package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps decode and validation failures of a submitted config.
var ErrInvalidConfig = errors.New("invalid configuration")

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	path   string
}

// NewManager creates a new ConfigManager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Path returns the file the configuration was loaded from, if any.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update swaps in config. Values already handed out by Get are not changed.
func (m *Manager) Update(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.config
	m.config = config

	if old != nil {
		slog.Debug("Configuration updated",
			"export_overwrite_changed", old.Export.Overwrite != config.Export.Overwrite,
			"watch_dir_changed", old.Import.WatchDir != config.Import.WatchDir,
			"autoload_changed", !slices.Equal(old.Library.Autoload, config.Library.Autoload),
		)
	}
}

// Apply decodes a YAML document over a copy of the current configuration,
// validates it and makes it current. Keys missing from the document keep
// their current values. The result is saved when the manager has a path.
func (m *Manager) Apply(document []byte) (*Config, error) {
	next := *m.Get()
	next.Library.Autoload = slices.Clone(next.Library.Autoload)

	if err := yaml.NewDecoder(bytes.NewReader(document)).Decode(&next); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := Validate(&next); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m.Update(&next)
	if path := m.Path(); path != "" {
		if err := m.Save(path); err != nil {
			return nil, fmt.Errorf("configuration applied but not saved: %w", err)
		}
	}
	return &next, nil
}

// Save writes the current configuration to the specified file path.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := writeConfig(path, m.config); err != nil {
		slog.Error("Failed to save configuration", "path", path, "error", err)
		return err
	}
	slog.Info("Configuration saved successfully", "path", path)
	return nil
}

// EnsureWatchDir creates the import watch directory if the watcher is enabled.
func (m *Manager) EnsureWatchDir() error {
	cfg := m.Get()
	if !cfg.Import.AutoStartWatcher {
		return nil
	}
	if err := os.MkdirAll(cfg.Import.WatchDir, 0755); err != nil {
		return err
	}
	slog.Info("Watch directory created/verified", "path", cfg.Import.WatchDir)
	return nil
}

// GetJSON returns the current configuration as a JSON string.
func (m *Manager) GetJSON() string {
	jsonBytes, err := json.Marshal(m.Get())
	if err != nil {
		slog.Error("failed to marshal config to JSON", "error", err)
		return err.Error()
	}
	return string(jsonBytes)
}

func (m *Manager) GetYAML() string {
	yamlBytes, err := yaml.Marshal(m.Get())
	if err != nil {
		slog.Error("failed to marshal config to YAML", "error", err)
		return err.Error()
	}
	return string(yamlBytes)
}
