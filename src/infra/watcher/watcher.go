package watcher

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/contre95/mediashelf/src/features/importing"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory for new JSON collections and emits one event
// per file once writes have settled. It can be stopped and started again.
type Watcher struct {
	mu            sync.Mutex
	watcher       *fsnotify.Watcher
	watchPath     string
	debounce      time.Duration
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	pending       map[string]struct{}
	running       bool
	stopChan      chan struct{}
	eventChan     chan<- importing.FileEvent
}

// NewWatcher creates a new file system watcher
func NewWatcher(eventChan chan<- importing.FileEvent, debounce time.Duration) (*Watcher, error) {
	if eventChan == nil {
		return nil, errors.New("watcher needs an event channel")
	}
	return &Watcher{
		debounce:  debounce,
		pending:   make(map[string]struct{}),
		eventChan: eventChan,
	}, nil
}

// Start begins watching the directory for new files. Each start opens a fresh
// fsnotify watcher, so a stopped Watcher can be started again.
func (w *Watcher) Start(ctx context.Context, watchPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	slog.Info("Starting file watcher", "path", watchPath)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(watchPath); err != nil {
		fsw.Close()
		return err
	}

	w.watcher = fsw
	w.watchPath = watchPath
	w.stopChan = make(chan struct{})
	w.running = true

	go w.watchLoop(ctx, fsw, w.stopChan)

	slog.Info("File watcher started successfully")
	return nil
}

// Stop stops the file watcher
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	slog.Info("Stopping file watcher", "path", w.watchPath)
	w.running = false
	close(w.stopChan)

	// Cancel any pending debounce timer
	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	clear(w.pending)
	w.debounceMutex.Unlock()

	if err := w.watcher.Close(); err != nil {
		slog.Error("Failed to close file watcher", "error", err)
	}
	w.watcher = nil
}

// Running reports whether the watcher is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// watchLoop processes file system events
func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher, stop <-chan struct{}) {
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", "error", err)

		case <-stop:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent processes a single file system event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !isCollection(event.Name) {
		return
	}

	slog.Debug("Detected collection file", "file", event.Name, "op", event.Op.String())

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	w.pending[event.Name] = struct{}{}
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounce, w.flush)
}

// isCollection reports whether path looks like a JSON collection. Hidden
// files are skipped so temporary files from an export are not picked up.
func isCollection(path string) bool {
	name := filepath.Base(path)
	return !strings.HasPrefix(name, ".") && strings.EqualFold(filepath.Ext(name), ".json")
}

// flush emits an event for every file seen during the debounce period.
func (w *Watcher) flush() {
	w.debounceMutex.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	clear(w.pending)
	w.debounceMutex.Unlock()

	for _, path := range paths {
		event := importing.FileEvent{
			Path:      path,
			EventType: importing.FileCreated,
			Timestamp: time.Now(),
		}
		select {
		case w.eventChan <- event:
			slog.Info("Emitted file event after debounce", "path", event.Path)
		default:
			slog.Warn("Event channel full, dropping file event", "path", event.Path)
		}
	}
}
