package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Provider calls are expected to finish well under a few seconds.
var upstreamBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// PromCollector records weather provider calls: one latency histogram and one outcome counter per operation.
type PromCollector struct {
	latency  *prometheus.HistogramVec
	outcomes *prometheus.CounterVec
}

// NewPromCollector registers the upstream series under namespace, the same one NewMetrics uses.
func NewPromCollector(reg prometheus.Registerer, namespace string) *PromCollector {
	c := &PromCollector{
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "request_duration_seconds",
				Help:      "Latency of OpenWeatherMap calls by operation",
				Buckets:   upstreamBuckets,
			},
			[]string{"operation"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "requests_total",
				Help:      "OpenWeatherMap calls by operation and outcome (success or error kind)",
			},
			[]string{"operation", "outcome"},
		),
	}
	reg.MustRegister(c.latency, c.outcomes)
	return c
}

// UpstreamCollector builds the provider call collector on the service registry.
func (m *Metrics) UpstreamCollector() *PromCollector {
	return NewPromCollector(m.Registry, m.Namespace)
}

func (c *PromCollector) ObserveLatency(operation string, d time.Duration) {
	c.latency.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrementCounter counts one call; labels carries the outcome.
func (c *PromCollector) IncrementCounter(operation string, labels ...string) {
	outcome := "unknown"
	if len(labels) > 0 {
		outcome = labels[0]
	}
	c.outcomes.WithLabelValues(operation, outcome).Inc()
}
