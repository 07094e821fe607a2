package feature

import "fmt"

// IndexKind selects how a feature answers spatial queries.
type IndexKind int

const (
	// IndexKDTree uses a median-split k-d tree. This is the default.
	IndexKDTree IndexKind = iota

	// IndexRTree uses a bulk-loaded R-tree.
	IndexRTree

	// IndexNone answers every query with a linear scan over all elements.
	IndexNone
)

// String returns the name of the index kind.
func (k IndexKind) String() string {
	switch k {
	case IndexKDTree:
		return "kdtree"
	case IndexRTree:
		return "rtree"
	case IndexNone:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseIndexKind parses a name returned by IndexKind.String.
func ParseIndexKind(name string) (IndexKind, error) {
	switch name {
	case "kdtree", "":
		return IndexKDTree, nil
	case "rtree":
		return IndexRTree, nil
	case "linear", "none":
		return IndexNone, nil
	}
	return 0, fmt.Errorf("unknown index kind %q (want kdtree, rtree or linear)", name)
}

// Options configures a feature.
type Options struct {
	// IndexKind selects the spatial index implementation.
	// Default: IndexKDTree
	IndexKind IndexKind

	// NodeSize is the k-d tree leaf size.
	// Default: 64
	NodeSize int

	// SelectionAPI enables point picking. When false, PointSearch returns an
	// empty result. DefaultOptions sets it to true; a zero Options leaves
	// picking off.
	SelectionAPI bool

	// Transform converts between world and display space for point picking.
	// If nil, IdentityTransform is used.
	Transform Transform

	// Clock stamps modifications. If nil, DefaultClock is used.
	Clock *Clock

	// Logger receives structured logs. If nil, logging is disabled.
	Logger *Logger

	// Metrics receives operational metrics. If nil, metrics are discarded.
	Metrics MetricsCollector
}

// DefaultOptions returns feature options with defaults.
func DefaultOptions() Options {
	return Options{
		IndexKind:    IndexKDTree,
		NodeSize:     64,
		SelectionAPI: true,
		Transform:    IdentityTransform{},
		Clock:        nil,
		Logger:       nil,
		Metrics:      nil,
	}
}

func (o Options) withDefaults() Options {
	if o.NodeSize <= 0 {
		o.NodeSize = 64
	}
	if o.Transform == nil {
		o.Transform = IdentityTransform{}
	}
	if o.Clock == nil {
		o.Clock = DefaultClock
	}
	if o.Logger == nil {
		o.Logger = NoopLogger()
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetricsCollector{}
	}
	return o
}
