package spatial

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kinds = []Kind{KindKDTree, KindRTree}

func buildWith(kind Kind, entries []Entry) *Index {
	opts := DefaultBuildOptions()
	opts.Kind = kind
	opts.NodeSize = 4
	return Build(entries, opts)
}

func linearSearch(entries []Entry, box Box) []int {
	var result []int
	for _, e := range entries {
		if finite(e.X) && finite(e.Y) && box.Contains(e.X, e.Y) {
			result = append(result, e.ID)
		}
	}
	sort.Ints(result)
	return result
}

func randomEntries(n int, seed int64) []Entry {
	rng := rand.New(rand.NewSource(seed))
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			ID:     i,
			X:      rng.Float64()*200 - 100,
			Y:      rng.Float64()*200 - 100,
			Radius: rng.Float64() * 10,
		}
	}
	return entries
}

func TestSearchEmpty(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			idx := buildWith(kind, nil)
			assert.Equal(t, 0, idx.Len())
			assert.Empty(t, idx.Search(Box{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}))
			_, ok := idx.Extent()
			assert.False(t, ok)
		})
	}
}

func TestSearchTwoPoints(t *testing.T) {
	entries := []Entry{
		{ID: 0, X: 0, Y: 0, Radius: 5},
		{ID: 1, X: 100, Y: 0, Radius: 5},
	}

	tests := []struct {
		name string
		box  Box
		want []int
	}{
		{"first only", Box{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}, []int{0}},
		{"both", Box{MinX: -1, MinY: -1, MaxX: 101, MaxY: 1}, []int{0, 1}},
		{"none", Box{MinX: 10, MinY: -1, MaxX: 90, MaxY: 1}, []int{}},
		{"boundary inclusive", Box{MinX: 0, MinY: 0, MaxX: 100, MaxY: 0}, []int{0, 1}},
		{"degenerate on point", Box{MinX: 100, MinY: 0, MaxX: 100, MaxY: 0}, []int{1}},
		{"infinite edges", Box{MinX: math.Inf(-1), MinY: math.Inf(-1), MaxX: math.Inf(1), MaxY: math.Inf(1)}, []int{0, 1}},
		{"NaN query", Box{MinX: math.NaN(), MinY: 0, MaxX: 1, MaxY: 1}, []int{}},
	}

	for _, kind := range kinds {
		idx := buildWith(kind, entries)
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				got := idx.Search(tt.box)
				if len(tt.want) == 0 {
					assert.Empty(t, got)
					return
				}
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestMaxRadius(t *testing.T) {
	entries := []Entry{
		{ID: 0, X: 0, Y: 0, Radius: 5},
		{ID: 1, X: 1, Y: 1, Radius: 12.5},
		{ID: 2, X: 2, Y: 2, Radius: math.Inf(1)},
		{ID: 3, X: 3, Y: 3, Radius: -4},
		{ID: 4, X: math.NaN(), Y: 0, Radius: 100},
	}
	for _, kind := range kinds {
		idx := buildWith(kind, entries)
		assert.Equal(t, 12.5, idx.MaxRadius(), kind.String())
	}
}

func TestNonFiniteExcluded(t *testing.T) {
	entries := []Entry{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: math.NaN(), Y: 0},
		{ID: 2, X: 1, Y: math.Inf(1)},
		{ID: 3, X: 2, Y: 2},
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			idx := buildWith(kind, entries)
			assert.Equal(t, 2, idx.Len())
			assert.Equal(t, 2, idx.ExcludedCount())
			assert.Equal(t, []int{1, 2}, idx.Excluded())

			all := Box{MinX: math.Inf(-1), MinY: math.Inf(-1), MaxX: math.Inf(1), MaxY: math.Inf(1)}
			assert.Equal(t, []int{0, 3}, idx.Search(all))

			extent, ok := idx.Extent()
			require.True(t, ok)
			assert.Equal(t, Box{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, extent)
		})
	}
}

func TestSearchMatchesLinearScan(t *testing.T) {
	entries := randomEntries(5000, 42)
	rng := rand.New(rand.NewSource(7))

	indexes := map[Kind]*Index{}
	for _, kind := range kinds {
		indexes[kind] = buildWith(kind, entries)
	}

	for q := 0; q < 200; q++ {
		x0, y0 := rng.Float64()*220-110, rng.Float64()*220-110
		w, h := rng.Float64()*40, rng.Float64()*40
		box := Box{MinX: x0, MinY: y0, MaxX: x0 + w, MaxY: y0 + h}

		want := linearSearch(entries, box)
		for kind, idx := range indexes {
			got := idx.Search(box)
			if len(want) == 0 {
				assert.Empty(t, got, "%s query %d", kind, q)
				continue
			}
			assert.Equal(t, want, got, "%s query %d", kind, q)
		}
	}
}

func TestSearchDuplicatePositions(t *testing.T) {
	entries := make([]Entry, 300)
	for i := range entries {
		entries[i] = Entry{ID: i, X: float64(i % 3), Y: 0}
	}
	for _, kind := range kinds {
		idx := buildWith(kind, entries)
		got := idx.Search(Box{MinX: 1, MinY: 0, MaxX: 1, MaxY: 0})
		assert.Len(t, got, 100, kind.String())
		for _, id := range got {
			assert.Equal(t, 1, id%3)
		}
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	entries := randomEntries(1000, 3)
	box := Box{MinX: -20, MinY: -20, MaxX: 35, MaxY: 10}
	for _, kind := range kinds {
		first := buildWith(kind, entries).Search(box)
		second := buildWith(kind, entries).Search(box)
		assert.Equal(t, first, second, kind.String())
	}
}

func TestLargeMagnitudeCoordinates(t *testing.T) {
	// Projected coordinates in metres are often in the millions.
	entries := []Entry{
		{ID: 0, X: 4_500_000.25, Y: -7_300_000.5},
		{ID: 1, X: 4_500_001.25, Y: -7_300_000.5},
	}
	for _, kind := range kinds {
		idx := buildWith(kind, entries)
		got := idx.Search(Box{MinX: 4_500_000.25, MinY: -7_300_000.5, MaxX: 4_500_000.25, MaxY: -7_300_000.5})
		assert.Equal(t, []int{0}, got, kind.String())
	}
}

func TestBuildRecordsStamp(t *testing.T) {
	opts := DefaultBuildOptions()
	opts.Stamp = 17
	idx := Build([]Entry{{ID: 0}}, opts)
	assert.Equal(t, uint64(17), idx.Stamp())
	assert.Equal(t, KindKDTree, idx.Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "kdtree", KindKDTree.String())
	assert.Equal(t, "rtree", KindRTree.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
