package feature

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexKind(t *testing.T) {
	tests := []struct {
		name    string
		want    IndexKind
		wantErr bool
	}{
		{"", IndexKDTree, false},
		{"kdtree", IndexKDTree, false},
		{"rtree", IndexRTree, false},
		{"linear", IndexNone, false},
		{"none", IndexNone, false},
		{"quadtree", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseIndexKind(tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}

	for _, kind := range indexKinds {
		got, err := ParseIndexKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, 64, opts.NodeSize)
	assert.Equal(t, IdentityTransform{}, opts.Transform)
	assert.Same(t, DefaultClock, opts.Clock)
	assert.NotNil(t, opts.Logger)
	assert.Equal(t, NoopMetricsCollector{}, opts.Metrics)

	def := DefaultOptions()
	assert.True(t, def.SelectionAPI)
	assert.Equal(t, IndexKDTree, def.IndexKind)
}

func TestSelectionAPIFromOptions(t *testing.T) {
	bare := NewPointFeature(Options{IndexKind: IndexRTree, Clock: NewClock()})
	bare.SetPositions([]Point{{X: 0, Y: 0}})
	assert.False(t, bare.SelectionAPI())
	hit, err := bare.PointSearch(Point{})
	require.NoError(t, err)
	assert.Empty(t, hit.Indices)

	opts := DefaultOptions()
	opts.IndexKind = IndexRTree
	opts.Clock = NewClock()
	f := NewPointFeature(opts)
	f.SetPositions([]Point{{X: 0, Y: 0}})
	assert.True(t, f.SelectionAPI())
	hit, err = f.PointSearch(Point{})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, hit.Indices)
}

func TestSetTransformNil(t *testing.T) {
	f := newTestPoints()
	f.SetTransform(Viewport{Width: 10})
	f.SetTransform(nil)
	assert.Equal(t, IdentityTransform{}, f.Transform())
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	m.RecordIndexBuild(10, 2, time.Millisecond)
	m.RecordQuery(QueryPoint, 3, time.Microsecond, nil)
	m.RecordQuery(QueryBox, 0, time.Microsecond, errors.New("boom"))

	assert.Equal(t, MetricsStats{
		IndexBuilds:      1,
		IndexedElements:  10,
		ExcludedElements: 2,
		PointQueries:     1,
		BoxQueries:       1,
		QueryErrors:      1,
	}, m.GetStats())
	assert.Equal(t, int64(time.Millisecond), m.BuildTotalNanos.Load())
	assert.Equal(t, int64(2*time.Microsecond), m.QueryTotalNanos.Load())
}

func TestQueryKindString(t *testing.T) {
	assert.Equal(t, "point", QueryPoint.String())
	assert.Equal(t, "box", QueryBox.String())
	assert.Equal(t, "unknown", QueryKind(9).String())
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, slog.LevelWarn).WithFeature("f1", "point")

	log.LogIndexBuild(5, 0, 3, time.Millisecond)
	assert.Empty(t, buf.String(), "rebuilds log at debug")

	log.LogIndexBuild(5, 2, 3, time.Millisecond)
	assert.Contains(t, buf.String(), "excluded=2")
	assert.Contains(t, buf.String(), "feature=f1")

	buf.Reset()
	NoopLogger().LogQuery(QueryPoint, 1, 1, errors.New("boom"))
	assert.Empty(t, buf.String())
}
