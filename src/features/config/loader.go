package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when MEDIASHELF_CONFIG is not set.
const DefaultPath = "config.yaml"

// PathFromEnv returns the config path from MEDIASHELF_CONFIG, or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv("MEDIASHELF_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads a YAML file from the given path and returns a new ConfigManager.
// If the file doesn't exist, creates a default configuration.
func Load(path string) (*Manager, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		defaultCfg := createDefaultConfig()

		// Save default config to file
		if err := saveDefaultConfig(path, defaultCfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		slog.Info("Default configuration created successfully", "path", path)
		applyEnv(defaultCfg)
		if err := Validate(defaultCfg); err != nil {
			return nil, err
		}
		return &Manager{config: defaultCfg, path: path}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := createDefaultConfig()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// Override with environment variables if set
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Manager{config: cfg, path: path}, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if policy := os.Getenv("MEDIASHELF_EXPORT_OVERWRITE"); policy != "" {
		cfg.Export.Overwrite = policy
	}
}

// saveDefaultConfig saves the default configuration to the specified file path
func saveDefaultConfig(path string, cfg *Config) error {
	if err := writeConfig(path, cfg); err != nil {
		return err
	}
	slog.Info("Default configuration saved", "path", path)
	return nil
}

func writeConfig(path string, cfg *Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return encoder.Close()
}
