package config

// Config holds the application configuration.
type Config struct {
	Logger  Logger  `yaml:"logger"`
	Library Library `yaml:"library"`
	Import  Import  `yaml:"import"`
	Export  Export  `yaml:"export" validate:"required"`
	Server  Server  `yaml:"server"`
	Metrics Metrics `yaml:"metrics"`
	Shell   Shell   `yaml:"shell"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json text logfmt"`
}

// Library holds the configuration of the in-memory media library.
type Library struct {
	// JSON files imported on startup.
	Autoload []string `yaml:"autoload"`
}

type Import struct {
	WatchDir         string `yaml:"watch_dir" validate:"required_if=AutoStartWatcher true"`
	AutoStartWatcher bool   `yaml:"auto_start_watcher"`
	DebounceSeconds  int    `yaml:"debounce_seconds" validate:"gte=0"`
}

// Export holds the configuration for writing JSON collections.
type Export struct {
	Overwrite string `yaml:"overwrite" validate:"required,oneof=fail overwrite rename"` // What to do when the destination exists
}

// Server hold the configuration for the Fiber server Config
type Server struct {
	Enabled     bool   `yaml:"enabled"`
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port" validate:"required_if=Enabled true"`
}

// Metrics holds the configuration for the Prometheus endpoint
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}

// Shell holds the configuration for the interactive command line
type Shell struct {
	Enabled bool   `yaml:"enabled"`
	Prompt  string `yaml:"prompt"`
}
