package exporting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contre95/mediashelf/src/features/config"
	"github.com/contre95/mediashelf/src/features/metrics"
	"github.com/contre95/mediashelf/src/infra/files"
	"github.com/contre95/mediashelf/src/media"
)

var (
	// ErrFileExists is returned by Write under PolicyFail when the
	// destination is taken.
	ErrFileExists = errors.New("file already exists")
	// ErrEncoding is returned when the records cannot be serialized.
	ErrEncoding = files.ErrEncoding
)

// Service is the domain service for the exporting feature.
type Service struct {
	config  *config.Manager
	metrics *metrics.Metrics
}

// NewService creates a new exporting service.
func NewService(cfg *config.Manager, m *metrics.Metrics) *Service {
	return &Service{config: cfg, metrics: m}
}

// DefaultPolicy returns the overwrite policy from the config, or PolicyFail
// when there is no usable one.
func (s *Service) DefaultPolicy() OverwritePolicy {
	if s.config == nil {
		return PolicyFail
	}
	policy, err := ParsePolicy(s.config.Get().Export.Overwrite)
	if err != nil {
		slog.Warn("Invalid export policy in config, using fail", "error", err)
		return PolicyFail
	}
	return policy
}

// Write serializes records to path and returns the path actually written.
// Records that no longer carry exactly the fields their type requires are
// left out.
func (s *Service) Write(ctx context.Context, path string, records []*media.Record, policy OverwritePolicy) (string, error) {
	slog.Debug("Write service called", "path", path, "records", len(records), "policy", policy)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := files.ResolvePath(path)
	if err != nil {
		slog.Error("Write failed", "path", path, "error", err)
		return "", err
	}

	if files.Exists(target) {
		switch policy {
		case PolicyOverwrite:
			slog.Info("Overwriting existing file", "path", target)
		case PolicyRename:
			renamed := files.FreePath(target)
			slog.Info("Destination exists, writing to a new name", "path", target, "renamed", renamed)
			target = renamed
		default:
			slog.Error("Write failed", "path", target, "error", ErrFileExists)
			return "", fmt.Errorf("%w: %s", ErrFileExists, target)
		}
	}

	entries := Entries(records)
	if skipped := len(records) - len(entries); skipped > 0 {
		slog.Warn("Invalid records left out of export", "path", target, "skipped", skipped)
	}

	if err := files.WriteEntries(target, entries); err != nil {
		slog.Error("Write failed", "path", target, "error", err)
		return "", err
	}

	s.metrics.Exported(len(entries))
	slog.Debug("Write completed", "path", target, "written", len(entries))
	return target, nil
}

// Entries converts the records that still validate into interchange entries.
func Entries(records []*media.Record) []files.Entry {
	entries := make([]files.Entry, 0, len(records))
	for _, r := range records {
		if !media.ValidateMetadata(string(r.Kind), media.ComputePresence(r)) {
			slog.Debug("Record no longer valid, skipping", "filename", r.Filename, "type", r.Kind)
			continue
		}
		metadata := r.ExportableMetadata()
		if r.Notes != "" {
			metadata[media.FieldNotes] = r.Notes
		}
		entries = append(entries, files.Entry{
			Fullpath: r.Path,
			Type:     string(r.Kind),
			Metadata: metadata,
		})
	}
	return entries
}
