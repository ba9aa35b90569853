// Package metrics exposes Prometheus collectors for the media library.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the services report to.
type Metrics struct {
	registry *prometheus.Registry

	RecordsTotal     prometheus.Gauge
	ImportedTotal    prometheus.Counter
	RejectedTotal    prometheus.Counter
	ExportedTotal    prometheus.Counter
	SearchesTotal    *prometheus.CounterVec
	ProtectedRemoves *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.RecordsTotal = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "mediashelf_records_total",
			Help: "Number of records held by the library",
		},
	)

	m.ImportedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mediashelf_import_accepted_total",
			Help: "Total number of entries accepted on import",
		},
	)

	m.RejectedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mediashelf_import_rejected_total",
			Help: "Total number of entries rejected on import",
		},
	)

	m.ExportedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "mediashelf_export_records_total",
			Help: "Total number of records written on export",
		},
	)

	m.SearchesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediashelf_searches_total",
			Help: "Total number of library queries",
		},
		[]string{"kind"},
	)

	m.ProtectedRemoves = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediashelf_protected_field_removals_total",
			Help: "Total number of refused removals of a required field",
		},
		[]string{"field"},
	)

	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// The helpers below are safe on a nil *Metrics so services can run without
// metrics enabled.

func (m *Metrics) SetRecords(n int) {
	if m == nil {
		return
	}
	m.RecordsTotal.Set(float64(n))
}

func (m *Metrics) Imported(accepted, rejected int) {
	if m == nil {
		return
	}
	m.ImportedTotal.Add(float64(accepted))
	m.RejectedTotal.Add(float64(rejected))
}

func (m *Metrics) Exported(n int) {
	if m == nil {
		return
	}
	m.ExportedTotal.Add(float64(n))
}

// Searched counts a query of the given kind (all, search, metadata, filter).
func (m *Metrics) Searched(kind string) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) ProtectedRemoval(field string) {
	if m == nil {
		return
	}
	m.ProtectedRemoves.WithLabelValues(field).Inc()
}
