package library

import (
	"log/slog"
	"strings"

	"github.com/contre95/mediashelf/src/features/metrics"
	"github.com/contre95/mediashelf/src/media"
)

// Service is the domain service for the library feature.
type Service struct {
	library media.Library
	metrics *metrics.Metrics
}

// NewService creates a new library service.
func NewService(lib media.Library, m *metrics.Metrics) *Service {
	return &Service{
		library: lib,
		metrics: m,
	}
}

// All returns every record sorted by filename.
func (s *Service) All() []*media.Record {
	slog.Debug("All service called")
	s.metrics.Searched("all")
	records := s.library.All()
	slog.Debug("All completed", "count", len(records))
	return records
}

// Count returns the number of records in the library.
func (s *Service) Count() int {
	return s.library.Count()
}

// Search returns the records holding term as a keyword or a value.
func (s *Service) Search(term string) []*media.Record {
	slog.Debug("Search service called", "term", term)
	s.metrics.Searched("search")
	records := s.library.Search(term)
	slog.Debug("Search completed", "term", term, "count", len(records))
	return records
}

// SearchMetadata returns the records holding data.Value but not data.Keyword.
func (s *Service) SearchMetadata(data media.Metadata) []*media.Record {
	slog.Debug("SearchMetadata service called", "keyword", data.Keyword, "value", data.Value)
	s.metrics.Searched("metadata")
	records := s.library.SearchMetadata(data)
	slog.Debug("SearchMetadata completed", "count", len(records))
	return records
}

// FilterBy restricts a search to one kind. The first element is the kind's
// tag, the rest are search terms.
func (s *Service) FilterBy(categoryAndTerms []string) []*media.Record {
	slog.Debug("FilterBy service called", "args", categoryAndTerms)
	s.metrics.Searched("filter")
	records := s.library.FilterBy(categoryAndTerms)
	slog.Debug("FilterBy completed", "count", len(records))
	return records
}

// List answers a list query. Without terms it returns the whole library. A
// leading kind tag makes it a FilterBy. Otherwise it is the union of a Search
// per term, in term order.
func (s *Service) List(terms []string) []*media.Record {
	switch {
	case len(terms) == 0:
		return s.All()
	case media.IsFilterTag(terms[0]):
		return s.FilterBy(terms)
	}

	var results []*media.Record
	for _, term := range terms {
		for _, r := range s.Search(term) {
			if !media.Contains(results, r) {
				results = append(results, r)
			}
		}
	}
	return results
}

// AddMetadata attaches data to r and indexes it.
func (s *Service) AddMetadata(r *media.Record, data media.Metadata) {
	slog.Debug("AddMetadata service called", "filename", r.Filename, "keyword", data.Keyword, "value", data.Value)
	s.library.AddMetadata(data, r)
}

// RemoveMetadata strips data from every record holding it.
func (s *Service) RemoveMetadata(data media.Metadata) {
	slog.Debug("RemoveMetadata service called", "keyword", data.Keyword, "value", data.Value)
	s.library.RemoveMetadata(data)
}

// RemoveRecordField removes key from r. It reports false when key is a field
// the record's type requires.
func (s *Service) RemoveRecordField(r *media.Record, key string) bool {
	slog.Debug("RemoveRecordField service called", "filename", r.Filename, "key", key)
	removed := s.library.RemoveRecordField(r, key)
	if !removed {
		s.metrics.ProtectedRemoval(strings.ToLower(key))
	}
	return removed
}

// SetField replaces key on r with value. A protected key is not removed, so
// the new value is added next to the old one.
func (s *Service) SetField(r *media.Record, key, value string) {
	slog.Debug("SetField service called", "filename", r.Filename, "key", key, "value", value)
	s.RemoveRecordField(r, key)
	s.AddMetadata(r, media.Metadata{Keyword: key, Value: value})
}
