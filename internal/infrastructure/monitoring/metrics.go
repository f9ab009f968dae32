package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Blueprint metrics
	BlueprintsTotal   *prometheus.CounterVec
	CandidateAttempts *prometheus.CounterVec
	CandidateFailures *prometheus.CounterVec
	Fallbacks         prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		startTime: time.Now(),
		registry:  registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "builder_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "builder_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		BlueprintsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "builder_blueprints_total",
				Help: "Blueprint documents produced, by generation mode",
			},
			[]string{"mode"},
		),
		CandidateAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "builder_candidate_attempts_total",
				Help: "Remote generation attempts, by candidate model",
			},
			[]string{"model"},
		),
		CandidateFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "builder_candidate_failures_total",
				Help: "Failed remote generation attempts, by candidate model",
			},
			[]string{"model"},
		),
		Fallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "builder_fallbacks_total",
				Help: "Times the composer fell back to the template after remote failure",
			},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "builder_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	return m
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordBlueprint records one produced blueprint document.
func (m *Metrics) RecordBlueprint(mode string) {
	m.BlueprintsTotal.WithLabelValues(mode).Inc()
	if mode == "fallback" {
		m.Fallbacks.Inc()
	}
}

// RecordCandidateAttempt records one remote generation attempt.
func (m *Metrics) RecordCandidateAttempt(model string) {
	m.CandidateAttempts.WithLabelValues(model).Inc()
}

// RecordCandidateFailure records one failed remote generation attempt.
func (m *Metrics) RecordCandidateFailure(model string) {
	m.CandidateFailures.WithLabelValues(model).Inc()
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
