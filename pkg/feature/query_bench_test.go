package feature

import (
	"testing"
)

// Benchmark point picking with each index kind against a linear scan.

func benchmarkPointSearch(b *testing.B, kind IndexKind) {
	f := newMarkerFeature(kind, randomMarkers(100000, 1)...)
	if _, err := f.PointSearch(Point{}); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.PointSearch(Point{X: 12, Y: -40})
	}
}

func BenchmarkPointSearch_KDTree(b *testing.B) { benchmarkPointSearch(b, IndexKDTree) }
func BenchmarkPointSearch_RTree(b *testing.B)  { benchmarkPointSearch(b, IndexRTree) }
func BenchmarkPointSearch_Linear(b *testing.B) { benchmarkPointSearch(b, IndexNone) }

// BenchmarkRebuild measures a data assignment followed by the query that
// rebuilds the index.
func BenchmarkRebuild(b *testing.B) {
	markers := randomMarkers(100000, 1)
	data := make([]any, len(markers))
	for i, m := range markers {
		data[i] = m
	}
	f := newMarkerFeature(IndexKDTree)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.SetData(data)
		_, _ = f.PointSearch(Point{})
	}
}
