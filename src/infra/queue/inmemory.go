package queue

import (
	"sort"
	"sync"

	"github.com/contre95/mediashelf/src/features/importing"
)

// InMemoryReports is an in-memory implementation of importing.ReportStore.
type InMemoryReports struct {
	items sync.Map // map[string]*importing.Report
}

// NewInMemoryReports creates a new in-memory report store
func NewInMemoryReports() *InMemoryReports {
	return &InMemoryReports{}
}

// Add stores a report, replacing any report with the same ID
func (q *InMemoryReports) Add(report *importing.Report) error {
	q.items.Store(report.ID, report)
	return nil
}

// GetAll returns every report, oldest first
func (q *InMemoryReports) GetAll() []*importing.Report {
	var reports []*importing.Report
	q.items.Range(func(_, value any) bool {
		if report, ok := value.(*importing.Report); ok {
			reports = append(reports, report)
		}
		return true
	})
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})
	return reports
}

// GetByID returns a specific report by ID
func (q *InMemoryReports) GetByID(id string) (*importing.Report, error) {
	if value, ok := q.items.Load(id); ok {
		if report, ok := value.(*importing.Report); ok {
			return report, nil
		}
	}
	return nil, importing.ErrReportNotFound
}

// Clear removes all reports
func (q *InMemoryReports) Clear() error {
	q.items.Range(func(key, _ any) bool {
		q.items.Delete(key)
		return true
	})
	return nil
}
