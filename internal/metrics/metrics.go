// Package metrics exposes validator activity as Prometheus metrics,
// grounded on the reference client's pkg/metrics/prometheus_exporter.go
// conventions (a package-level registry, counters keyed by outcome).
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/eof2030/eof1validate/eof"
)

// Registry is the collector set wired into the HTTP server started by the
// serve subcommand. A fresh instance is safe to register into its own
// prometheus.Registerer so tests don't collide with the global default
// registry.
type Registry struct {
	Validations    *prometheus.CounterVec
	ValidationTime prometheus.Histogram
	MaxRecursion   prometheus.Gauge

	// Gatherer is the registerer's read side, when it has one (e.g. a
	// *prometheus.Registry). /metrics scrapes this gatherer rather than
	// the global default, so a test-local Registry never leaks into it.
	Gatherer prometheus.Gatherer

	mu               sync.Mutex
	maxRecursionSeen int
}

// New creates a Registry and registers its collectors into reg.
func New(reg prometheus.Registerer) *Registry {
	m := &Registry{
		Validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eof1validate_validations_total",
			Help: "Total EOF container validations by outcome.",
		}, []string{"result"}),
		ValidationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "eof1validate_validation_duration_seconds",
			Help:    "Validation latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		MaxRecursion: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "eof1validate_max_recursion_depth",
			Help: "Deepest sub-container recursion observed so far.",
		}),
	}
	reg.MustRegister(m.Validations, m.ValidationTime, m.MaxRecursion)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.Gatherer = g
	} else {
		m.Gatherer = prometheus.DefaultGatherer
	}

	// A CounterVec with no observed label combinations emits no series on
	// Gather, so pre-touch every known outcome label to make the metric
	// family visible (at zero) as soon as New returns.
	for e := eof.Success; e <= eof.ErrImpossible; e++ {
		m.Validations.WithLabelValues(eof.ErrorMessage(e))
	}

	return m
}

// Observe records the outcome of a single validate_eof call and its wall
// time, using error_message's stable identifier as the result label.
func (m *Registry) Observe(err eof.ValidationError, seconds float64) {
	m.Validations.WithLabelValues(eof.ErrorMessage(err)).Inc()
	m.ValidationTime.Observe(seconds)
}

// ObserveRecursionDepth updates MaxRecursion only when depth is a new high,
// so the gauge genuinely tracks the deepest recursion observed so far
// rather than whatever the most recent call happened to reach.
func (m *Registry) ObserveRecursionDepth(depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if depth > m.maxRecursionSeen {
		m.maxRecursionSeen = depth
		m.MaxRecursion.Set(float64(depth))
	}
}
