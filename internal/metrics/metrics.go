// Package metrics defines the application's Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Webhook metrics
	WebhookRequestsTotal   *prometheus.CounterVec
	WebhookDurationSeconds *prometheus.HistogramVec

	// Schedule query metrics
	QueriesTotal *prometheus.CounterVec

	// Grid parse metrics (set once at startup)
	GridWeeksParsed    prometheus.Gauge
	GridDaysParsed     prometheus.Gauge
	GridRowsSkipped    prometheus.Gauge
	GridEntriesDropped prometheus.Gauge
	SourceLoadFailures prometheus.Counter

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
}

// Query outcome labels for QueriesTotal.
const (
	OutcomeRegular        = "regular"
	OutcomeSpecial        = "special"
	OutcomeOutOfRange     = "out_of_range"
	OutcomeNoData         = "no_data"
	OutcomeClarifyDate    = "clarify_date"
	OutcomeClarifySection = "clarify_section"
)

// New creates a Metrics instance with all metrics registered.
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		WebhookRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "timetable_webhook_requests_total",
				Help: "Total number of webhook events by type and status",
			},
			[]string{"event_type", "status"}, // status: success, error, reply_error
		),

		WebhookDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "timetable_webhook_duration_seconds",
				Help:    "Webhook event processing duration in seconds by event type",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"event_type"}, // event_type: message, postback, follow, join
		),

		QueriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "timetable_queries_total",
				Help: "Total number of schedule queries by outcome",
			},
			[]string{"outcome"},
		),

		GridWeeksParsed: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "timetable_grid_weeks_parsed",
				Help: "Number of week blocks parsed from the timetable source",
			},
		),

		GridDaysParsed: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "timetable_grid_days_parsed",
				Help: "Number of day rows parsed from the timetable source",
			},
		),

		GridRowsSkipped: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "timetable_grid_rows_skipped",
				Help: "Number of grid rows skipped as blank or malformed",
			},
		),

		GridEntriesDropped: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "timetable_grid_entries_dropped",
				Help: "Number of slot-cell entries dropped for not matching the subject pattern",
			},
		),

		SourceLoadFailures: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "timetable_source_load_failures_total",
				Help: "Total number of timetable workbook load failures",
			},
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "timetable_rate_limiter_dropped_total",
				Help: "Total number of requests that hit the rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: reply
		),
	}
}

// RecordWebhook records one processed webhook event.
func (m *Metrics) RecordWebhook(eventType, status string, duration float64) {
	m.WebhookRequestsTotal.WithLabelValues(eventType, status).Inc()
	m.WebhookDurationSeconds.WithLabelValues(eventType).Observe(duration)
}

// RecordQuery records the outcome of one schedule query.
func (m *Metrics) RecordQuery(outcome string) {
	m.QueriesTotal.WithLabelValues(outcome).Inc()
}

// RecordParse publishes the startup parse statistics.
func (m *Metrics) RecordParse(weeks, days, rowsSkipped, entriesDropped int) {
	m.GridWeeksParsed.Set(float64(weeks))
	m.GridDaysParsed.Set(float64(days))
	m.GridRowsSkipped.Set(float64(rowsSkipped))
	m.GridEntriesDropped.Set(float64(entriesDropped))
}

// RecordSourceLoadFailure records a workbook load failure.
func (m *Metrics) RecordSourceLoadFailure() {
	m.SourceLoadFailures.Inc()
}

// RecordRateLimiterDrop records a request hitting the rate limiter.
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}
