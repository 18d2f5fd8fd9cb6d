package core

import (
	"errors"
	"familytree/pkg/domain"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcome labels.
const (
	ResultOK           = "ok"
	ResultNotFound     = "not_found"
	ResultInvalidLevel = "invalid_level"
	ResultError        = "error"
)

// Metrics records query and load statistics on a private registry so that
// several services (e.g. in tests) never collide on global collectors.
type Metrics struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	persons  prometheus.Gauge
	rejected *prometheus.CounterVec
}

// NewMetrics constructs and registers the familytree collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "familytree_queries_total",
			Help: "Queries answered by command and outcome",
		}, []string{"command", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "familytree_query_duration_seconds",
			Help:    "Query evaluation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"command"}),
		persons: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "familytree_persons_loaded",
			Help: "Persons held by the store after load",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "familytree_load_rejected_total",
			Help: "Records rejected during load by reason",
		}, []string{"reason"}),
	}
	m.registry.MustRegister(m.queries, m.duration, m.persons, m.rejected)
	return m
}

// Registry exposes the underlying registry for exporters and tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveQuery records a query outcome.
func (m *Metrics) ObserveQuery(command string, err error, d time.Duration) {
	if m == nil || command == "" {
		return
	}
	m.queries.WithLabelValues(command, resultLabel(err)).Inc()
	m.duration.WithLabelValues(command).Observe(d.Seconds())
}

// SetPersons records the store size after load.
func (m *Metrics) SetPersons(n int) {
	if m == nil {
		return
	}
	m.persons.Set(float64(n))
}

// RecordRejected counts records that were not added during load.
func (m *Metrics) RecordRejected(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.rejected.WithLabelValues(reason).Add(float64(n))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrPersonNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrInvalidLevel):
		return ResultInvalidLevel
	default:
		return ResultError
	}
}
