package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contre95/mediashelf/src/features/config"
	"github.com/contre95/mediashelf/src/features/exporting"
	"github.com/contre95/mediashelf/src/features/hosting"
	"github.com/contre95/mediashelf/src/features/importing"
	"github.com/contre95/mediashelf/src/features/library"
	"github.com/contre95/mediashelf/src/features/logging"
	"github.com/contre95/mediashelf/src/features/metrics"
	"github.com/contre95/mediashelf/src/infra/memory"
	"github.com/contre95/mediashelf/src/infra/queue"
	"github.com/contre95/mediashelf/src/infra/watcher"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	if cfgManager.Get().Metrics.Enabled {
		m = metrics.NewMetrics()
	}

	// The library lives in memory for the whole process
	lib := memory.NewLibrary()
	libraryService := library.NewService(lib, m)

	// Create the importing service, with a directory watcher when configured
	events := make(chan importing.FileEvent, 16)
	debounce := time.Duration(cfgManager.Get().Import.DebounceSeconds) * time.Second
	dirWatcher, err := watcher.NewWatcher(events, debounce)
	if err != nil {
		log.Fatalf("failed to create watcher: %v", err)
	}
	importingService := importing.NewService(lib, cfgManager, m, queue.NewInMemoryReports(), dirWatcher, events)
	importingService.SetBaseContext(ctx)

	exportingService := exporting.NewService(cfgManager, m)

	for _, path := range cfgManager.Get().Library.Autoload {
		records, err := importingService.Read(ctx, path)
		if err != nil {
			slog.Error("Failed to autoload collection", "path", path, "error", err)
			continue
		}
		slog.Info("Collection autoloaded", "path", path, "records", len(records))
	}

	if cfgManager.Get().Import.AutoStartWatcher {
		if err := cfgManager.EnsureWatchDir(); err != nil {
			log.Fatalf("failed to create watch directory: %v", err)
		}
		if err := importingService.StartWatcher(ctx); err != nil {
			slog.Error("Failed to start watcher", "error", err)
		}
		defer importingService.StopWatcher()
	}

	// Create and start the HTTP server
	var server *hosting.Server
	if cfgManager.Get().Server.Enabled {
		server = hosting.NewServer(cfgManager, lib, importingService, exportingService, libraryService, m)
		go func() {
			if err := server.Start(); err != nil {
				slog.Error("Server stopped", "error", err)
			}
		}()
		slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)
	}

	// The shell owns stdin; leaving it ends the process
	if cfgManager.Get().Shell.Enabled {
		sh := hosting.NewShell(cfgManager, libraryService, importingService, exportingService)
		go func() {
			if err := sh.Run(ctx, os.Stdin, os.Stdout); err != nil {
				slog.Error("Shell stopped", "error", err)
			}
			stop()
		}()
	}

	if server == nil && !cfgManager.Get().Shell.Enabled && !cfgManager.Get().Import.AutoStartWatcher {
		slog.Warn("Nothing to run: shell, server and watcher are all disabled")
		return
	}

	// Wait for a shutdown signal
	<-ctx.Done()
	slog.Info("Shutting down...")

	if server != nil {
		if err := server.Shutdown(); err != nil {
			log.Fatalf("failed to shutdown server: %v", err)
		}
		slog.Info("Server gracefully shut down.")
	}
}
