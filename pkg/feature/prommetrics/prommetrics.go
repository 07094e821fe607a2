// Package prommetrics exports feature metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/beetlebugorg/geofeature/pkg/feature"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements feature.MetricsCollector with Prometheus metrics.
type Collector struct {
	indexBuilds   prometheus.Counter
	indexed       prometheus.Gauge
	excluded      prometheus.Counter
	buildDuration prometheus.Histogram
	queries       *prometheus.CounterVec
	matched       *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg means prometheus.DefaultRegisterer. Registration panics if the
// metric names are already registered.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		indexBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_builds_total",
			Help:      "Spatial index rebuilds",
		}),
		indexed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "index_elements",
			Help:      "Elements in the most recently built spatial index",
		}),
		excluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "index_excluded_elements_total",
			Help:      "Elements left out of spatial indexes for non-finite positions",
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "index_build_duration_seconds",
			Help:      "Spatial index rebuild latency",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Spatial queries by kind and status",
		}, []string{"kind", "status"}),
		matched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_matched_elements_total",
			Help:      "Elements returned by spatial queries",
		}, []string{"kind"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Spatial query latency, including any index rebuild",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"kind"}),
	}

	reg.MustRegister(
		c.indexBuilds,
		c.indexed,
		c.excluded,
		c.buildDuration,
		c.queries,
		c.matched,
		c.queryDuration,
	)
	return c
}

// RecordIndexBuild implements feature.MetricsCollector.
func (c *Collector) RecordIndexBuild(indexed, excluded int, duration time.Duration) {
	c.indexBuilds.Inc()
	c.indexed.Set(float64(indexed))
	c.excluded.Add(float64(excluded))
	c.buildDuration.Observe(duration.Seconds())
}

// RecordQuery implements feature.MetricsCollector.
func (c *Collector) RecordQuery(kind feature.QueryKind, matched int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.queries.WithLabelValues(kind.String(), status).Inc()
	c.matched.WithLabelValues(kind.String()).Add(float64(matched))
	c.queryDuration.WithLabelValues(kind.String()).Observe(duration.Seconds())
}

var _ feature.MetricsCollector = (*Collector)(nil)
