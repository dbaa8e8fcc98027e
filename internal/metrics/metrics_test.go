package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllMetrics(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordWebhook("message", "success", 0.05)
	m.RecordQuery(OutcomeRegular)
	m.RecordQuery(OutcomeClarifyDate)
	m.RecordParse(6, 30, 4, 2)
	m.RecordSourceLoadFailure()
	m.RecordRateLimiterDrop("reply")

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues(OutcomeRegular)), 0.001)
	assert.InDelta(t, 6.0, testutil.ToFloat64(m.GridWeeksParsed), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.SourceLoadFailures), 0.001)
}

func TestRecordParseOverwrites(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())

	m.RecordParse(6, 30, 4, 2)
	m.RecordParse(0, 0, 0, 0)

	assert.Zero(t, testutil.ToFloat64(m.GridWeeksParsed))
	assert.Zero(t, testutil.ToFloat64(m.GridEntriesDropped))
}
