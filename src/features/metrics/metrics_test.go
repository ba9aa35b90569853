package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.SetRecords(4)
	m.Imported(3, 2)
	m.Exported(5)
	m.Searched("filter")
	m.Searched("filter")
	m.ProtectedRemoval("creator")

	assert.Equal(t, 4.0, testutil.ToFloat64(m.RecordsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ImportedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RejectedTotal))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.ExportedTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("filter")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProtectedRemoves.WithLabelValues("creator")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SetRecords(1)
		m.Imported(1, 1)
		m.Exported(1)
		m.Searched("all")
		m.ProtectedRemoval("runtime")
	})
}

func TestNewMetrics_PrivateRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}
