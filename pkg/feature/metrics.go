package feature

import (
	"sync/atomic"
	"time"
)

// QueryKind identifies a query operation for logging and metrics.
type QueryKind int

const (
	// QueryPoint is a display-space point/radius pick.
	QueryPoint QueryKind = iota

	// QueryBox is a world-space box selection.
	QueryBox
)

// String returns the query kind name used in logs and metric labels.
func (k QueryKind) String() string {
	switch k {
	case QueryPoint:
		return "point"
	case QueryBox:
		return "box"
	default:
		return "unknown"
	}
}

// MetricsCollector receives operational metrics from features.
//
// See package prommetrics for a Prometheus implementation.
type MetricsCollector interface {
	// RecordIndexBuild is called after each spatial index rebuild.
	// indexed is the number of elements in the tree, excluded the number left
	// out for non-finite positions.
	RecordIndexBuild(indexed, excluded int, duration time.Duration)

	// RecordQuery is called after each query. err is nil if successful.
	RecordQuery(kind QueryKind, matched int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndexBuild(int, int, time.Duration)         {}
func (NoopMetricsCollector) RecordQuery(QueryKind, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	IndexBuilds      atomic.Int64
	IndexedElements  atomic.Int64
	ExcludedElements atomic.Int64
	BuildTotalNanos  atomic.Int64
	PointQueries     atomic.Int64
	BoxQueries       atomic.Int64
	QueryErrors      atomic.Int64
	QueryTotalNanos  atomic.Int64
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(indexed, excluded int, duration time.Duration) {
	b.IndexBuilds.Add(1)
	b.IndexedElements.Add(int64(indexed))
	b.ExcludedElements.Add(int64(excluded))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind QueryKind, matched int, duration time.Duration, err error) {
	switch kind {
	case QueryPoint:
		b.PointQueries.Add(1)
	case QueryBox:
		b.BoxQueries.Add(1)
	}
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	IndexBuilds      int64
	IndexedElements  int64
	ExcludedElements int64
	PointQueries     int64
	BoxQueries       int64
	QueryErrors      int64
}

// GetStats returns a snapshot of the collected counters.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	return MetricsStats{
		IndexBuilds:      b.IndexBuilds.Load(),
		IndexedElements:  b.IndexedElements.Load(),
		ExcludedElements: b.ExcludedElements.Load(),
		PointQueries:     b.PointQueries.Load(),
		BoxQueries:       b.BoxQueries.Load(),
		QueryErrors:      b.QueryErrors.Load(),
	}
}
