package importing

import (
	"errors"
	"time"

	"github.com/contre95/mediashelf/src/media"
)

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// Rejection is an entry that failed validation and the reasons why.
type Rejection struct {
	Fullpath string   `json:"fullpath"`
	Reasons  []string `json:"reasons"`
}

// Report describes the outcome of importing one file.
type Report struct {
	ID         string          `json:"id"`
	Source     string          `json:"source"`
	CreatedAt  time.Time       `json:"created_at"`
	Accepted   []*media.Record `json:"accepted"`
	Rejections []Rejection     `json:"rejections"`
}

// ReportStore keeps the reports of past imports.
type ReportStore interface {
	Add(report *Report) error
	GetAll() []*Report
	GetByID(id string) (*Report, error)
	Clear() error
}
