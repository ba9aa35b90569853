package importing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/contre95/mediashelf/src/features/config"
	"github.com/contre95/mediashelf/src/features/metrics"
	"github.com/contre95/mediashelf/src/infra/files"
	"github.com/contre95/mediashelf/src/media"
	"github.com/google/uuid"
)

// ErrInvalidFilepath is returned when the file to import does not exist.
var ErrInvalidFilepath = errors.New("invalid filepath")

// Service is the domain service for the importing feature.
type Service struct {
	library media.Library
	config  *config.Manager
	metrics *metrics.Metrics
	reports ReportStore

	watcher  Watcher
	events   <-chan FileEvent
	mu       sync.Mutex
	watching bool
	cancel   context.CancelFunc
	base     context.Context
}

// NewService creates a new importing service. The report store, the watcher
// and its event channel may be nil when not wanted.
func NewService(lib media.Library, cfg *config.Manager, m *metrics.Metrics, reports ReportStore, w Watcher, events <-chan FileEvent) *Service {
	return &Service{
		library: lib,
		config:  cfg,
		metrics: m,
		reports: reports,
		watcher: w,
		events:  events,
		base:    context.Background(),
	}
}

// SetBaseContext sets the context background work such as the watcher started
// from an HTTP request runs under.
func (s *Service) SetBaseContext(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = ctx
}

func (s *Service) baseContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.base
}

// Read imports the JSON collection at path and returns the accepted records
// sorted by filename.
func (s *Service) Read(ctx context.Context, path string) ([]*media.Record, error) {
	report, err := s.ReadReport(ctx, path)
	if err != nil {
		return nil, err
	}
	return report.Accepted, nil
}

// ReadReport imports the JSON collection at path. Every valid entry becomes a
// record added to the library. Invalid entries are skipped and listed with
// their reasons in the report.
func (s *Service) ReadReport(ctx context.Context, path string) (*Report, error) {
	slog.Debug("ReadReport service called", "path", path)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved, err := files.ResolvePath(path)
	if err != nil {
		slog.Error("ReadReport failed", "path", path, "error", err)
		return nil, err
	}
	if !files.Exists(resolved) {
		slog.Error("ReadReport failed", "path", resolved, "error", ErrInvalidFilepath)
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilepath, resolved)
	}

	entries, err := files.ReadEntries(resolved)
	if err != nil {
		slog.Error("ReadReport failed", "path", resolved, "error", err)
		return nil, err
	}

	report := &Report{ID: uuid.New().String(), Source: resolved, CreatedAt: time.Now()}
	for _, entry := range entries {
		record, reasons := buildRecord(entry)
		if record == nil {
			report.Rejections = append(report.Rejections, Rejection{Fullpath: entry.Fullpath, Reasons: reasons})
			continue
		}
		s.library.Add(record)
		report.Accepted = append(report.Accepted, record)
	}
	media.SortByFilename(report.Accepted)

	if len(report.Rejections) > 0 {
		slog.Warn("Files not successfully imported", "file", path, "rejected", len(report.Rejections), "import_id", report.ID)
		for _, rejection := range report.Rejections {
			slog.Warn("Entry rejected", "fullpath", rejection.Fullpath, "reasons", rejection.Reasons, "import_id", report.ID)
		}
	}

	if s.reports != nil {
		if err := s.reports.Add(report); err != nil {
			slog.Warn("Failed to store import report", "import_id", report.ID, "error", err)
		}
	}

	s.metrics.Imported(len(report.Accepted), len(report.Rejections))
	s.metrics.SetRecords(s.library.Count())
	slog.Debug("ReadReport completed", "path", resolved, "accepted", len(report.Accepted), "rejected", len(report.Rejections))
	return report, nil
}

// buildRecord validates entry and returns its record, or nil and the reasons
// it was refused.
func buildRecord(entry files.Entry) (*media.Record, []string) {
	presence := media.PresenceOf(entry.Metadata)
	if !media.Validate(entry.Fullpath, entry.Type, presence) {
		return nil, media.ExplainInvalid(entry.Fullpath, entry.Type, presence)
	}

	metadata := make([]media.Metadata, 0, len(entry.Metadata))
	for keyword, value := range entry.Metadata {
		metadata = append(metadata, media.Metadata{Keyword: keyword, Value: value})
	}
	return media.NewRecord(media.Kind(entry.Type), media.FilenameFrom(entry.Fullpath), entry.Fullpath, metadata), nil
}

// Reports returns the stored import reports, oldest first.
func (s *Service) Reports() []*Report {
	if s.reports == nil {
		return nil
	}
	return s.reports.GetAll()
}

// Report returns the stored import report with the given ID.
func (s *Service) Report(id string) (*Report, error) {
	if s.reports == nil {
		return nil, ErrReportNotFound
	}
	return s.reports.GetByID(id)
}

// ClearReports forgets every stored import report.
func (s *Service) ClearReports() error {
	if s.reports == nil {
		return nil
	}
	return s.reports.Clear()
}

// StartWatcher watches the configured directory and imports every JSON file
// dropped into it.
func (s *Service) StartWatcher(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return errors.New("no watcher configured")
	}
	if s.watching {
		return nil
	}

	watchDir := s.config.Get().Import.WatchDir
	watchCtx, cancel := context.WithCancel(ctx)
	if err := s.watcher.Start(watchCtx, watchDir); err != nil {
		cancel()
		slog.Error("Failed to start watcher", "path", watchDir, "error", err)
		return fmt.Errorf("failed to start watcher on %s: %w", watchDir, err)
	}
	s.cancel = cancel
	s.watching = true
	go s.consume(watchCtx)
	return nil
}

// StopWatcher stops directory watching.
func (s *Service) StopWatcher() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.watching {
		return
	}
	s.cancel()
	s.watcher.Stop()
	s.watching = false
}

// WatcherRunning reports whether the directory watcher is active.
func (s *Service) WatcherRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watching
}

func (s *Service) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-s.events:
			if !ok {
				return
			}
			report, err := s.ReadReport(ctx, event.Path)
			if err != nil {
				slog.Error("Watched import failed", "path", event.Path, "error", err)
				continue
			}
			slog.Info("Watched file imported", "path", event.Path, "accepted", len(report.Accepted), "rejected", len(report.Rejections))
		}
	}
}
