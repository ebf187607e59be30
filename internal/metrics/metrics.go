// Package metrics provides Prometheus instrumentation for the ECVRF
// engine's prove/verify/proof-to-hash calls, adapted from the teacher
// repo's infrastructure/metrics package. The HTTP, database, and
// blockchain-transaction collectors it carried have no counterpart here
// (the core does no I/O, spec §5) and are dropped in favor of
// operation-count and latency collectors for the three core calls.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the Prometheus collectors for one ECVRF instance's
// operation counts and latencies.
type Collector struct {
	OperationsTotal   *prometheus.CounterVec
	OperationErrors   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New creates a Collector registered against the default Prometheus
// registerer.
func New(serviceName string) *Collector {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Collector registered against a custom
// registerer, so tests and multiple instances in one process don't
// collide on the default registry.
func NewWithRegistry(serviceName string, registerer prometheus.Registerer) *Collector {
	c := &Collector{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecvrf_operations_total",
				Help: "Total number of ECVRF engine operations, by operation name.",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"operation"},
		),
		OperationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecvrf_operation_errors_total",
				Help: "Total number of failed ECVRF engine operations, by operation name and error code.",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"operation", "code"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "ecvrf_operation_duration_seconds",
				Help: "ECVRF engine operation latency in seconds, by operation name.",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
				Buckets: []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation"},
		),
	}

	if registerer != nil {
		registerer.MustRegister(c.OperationsTotal, c.OperationErrors, c.OperationDuration)
	}

	return c
}

// Observe records one completed operation's outcome and latency. code is
// the empty string on success.
func (c *Collector) Observe(operation, code string, duration time.Duration, err error) {
	c.OperationsTotal.WithLabelValues(operation).Inc()
	c.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		c.OperationErrors.WithLabelValues(operation, code).Inc()
	}
}

var (
	globalCollector *Collector
	globalMu        sync.Mutex
)

// Init initializes the global Collector instance.
func Init(serviceName string) *Collector {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalCollector == nil {
		globalCollector = New(serviceName)
	}
	return globalCollector
}

// Global returns the global Collector instance, initializing a default
// one on first use.
func Global() *Collector {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalCollector == nil {
		globalCollector = New("ecvrf")
	}
	return globalCollector
}
