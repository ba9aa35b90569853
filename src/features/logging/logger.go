package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/contre95/mediashelf/src/features/config"
)

// SetupLogger builds the slog logger described by the logger section of the
// config. A disabled logger discards everything.
func SetupLogger(cfg *config.Manager) *slog.Logger {
	return newLogger(cfg.Get().Logger, os.Stderr)
}

func newLogger(cfg config.Logger, w io.Writer) *slog.Logger {
	if !cfg.Enabled {
		w = io.Discard
	}

	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		formatter = log.LogfmtFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "info":
		level = log.InfoLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "Mediashelf",
		Formatter:       formatter,
		Level:           level,
	})

	logger := slog.New(handler)
	logger.Debug("Logger initialized", "time", time.Now().Format(time.RFC3339))
	return logger
}
