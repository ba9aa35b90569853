package config

var defaultConfig = Config{
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Library: Library{
		Autoload: []string{},
	},
	Import: Import{
		WatchDir:         "./inbox",
		AutoStartWatcher: false,
		DebounceSeconds:  2,
	},
	Export: Export{
		Overwrite: "fail",
	},
	Server: Server{
		Enabled:     false,
		PrintRoutes: false,
		Port:        3535,
	},
	Metrics: Metrics{
		Enabled: true,
	},
	Shell: Shell{
		Enabled: true,
		Prompt:  "> ",
	},
}

// createDefaultConfig returns a copy of the default configuration
func createDefaultConfig() *Config {
	cfg := defaultConfig
	cfg.Library.Autoload = append([]string{}, defaultConfig.Library.Autoload...)
	return &cfg
}
