// Package metrics holds the Prometheus collectors for redist batch runs.
//
// Collectors live on a private registry so tests and embedded uses never
// collide with the global default registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "redist"

// Collector records plan throughput and batch latency per operation
// ("score", "distance", "towers", ...).
type Collector struct {
	registry *prometheus.Registry

	Processed *prometheus.CounterVec
	Failed    *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewCollector builds and registers a fresh set of collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "plans_processed_total",
			Help:      "Plans processed successfully.",
		}, []string{"operation"}),
		Failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "plans_failed_total",
			Help:      "Plans skipped or aborted on error.",
		}, []string{"operation"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of one batch.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"operation"}),
	}
	c.registry.MustRegister(c.Processed, c.Failed, c.Duration)

	return c
}

// ObserveBatch records one finished batch of total plans, failed of which
// did not produce a result.
func (c *Collector) ObserveBatch(operation string, total, failed int, elapsed time.Duration) {
	if failed > total {
		failed = total
	}
	c.Processed.WithLabelValues(operation).Add(float64(total - failed))
	c.Failed.WithLabelValues(operation).Add(float64(failed))
	c.Duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Registry exposes the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
