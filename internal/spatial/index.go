// Package spatial provides the static point index behind feature hit-testing.
//
// An Index is built once from a snapshot of element positions and footprint
// radii and is never mutated afterwards; callers replace it wholesale when the
// underlying data changes.
package spatial

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Kind selects the tree implementation behind an Index.
type Kind int

const (
	// KindKDTree is a flat median-split k-d tree with alternating split axes.
	KindKDTree Kind = iota

	// KindRTree is an R-tree bulk loaded with rtreego.
	KindRTree
)

// String returns the name of the index kind.
func (k Kind) String() string {
	switch k {
	case KindKDTree:
		return "kdtree"
	case KindRTree:
		return "rtree"
	default:
		return "unknown"
	}
}

// Entry is one element to index.
type Entry struct {
	ID     int     // Element index; must fit in a uint32
	X, Y   float64 // World position
	Radius float64 // Footprint radius in display units
}

// Box is an inclusive axis-aligned query rectangle.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains returns true if (x, y) lies inside the box, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Box) hasNaN() bool {
	return math.IsNaN(b.MinX) || math.IsNaN(b.MinY) ||
		math.IsNaN(b.MaxX) || math.IsNaN(b.MaxY)
}

// BuildOptions configures index construction.
type BuildOptions struct {
	// Kind selects the tree implementation.
	Kind Kind

	// NodeSize is the maximum number of entries in a k-d tree leaf.
	// Default: 64
	NodeSize int

	// Stamp is the data stamp the index is built against.
	Stamp uint64
}

// DefaultBuildOptions returns build options with defaults.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Kind:     KindKDTree,
		NodeSize: 64,
	}
}

type tree interface {
	// search calls visit for every indexed entry whose position is inside box.
	search(box Box, visit func(id int))
}

// Index answers box queries over element positions.
type Index struct {
	tree      tree
	kind      Kind
	stamp     uint64
	maxRadius float64
	excluded  *roaring.Bitmap
	size      int
	extent    Box
}

// Build creates an index over entries.
//
// Entries with a non-finite position are left out of the tree and recorded in
// Excluded. Radii that are negative or non-finite do not contribute to
// MaxRadius.
func Build(entries []Entry, opts BuildOptions) *Index {
	if opts.NodeSize <= 0 {
		opts.NodeSize = DefaultBuildOptions().NodeSize
	}

	idx := &Index{
		kind:     opts.Kind,
		stamp:    opts.Stamp,
		excluded: roaring.New(),
	}

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !finite(e.X) || !finite(e.Y) {
			idx.excluded.Add(uint32(e.ID))
			continue
		}
		if finite(e.Radius) && e.Radius > idx.maxRadius {
			idx.maxRadius = e.Radius
		}
		if len(kept) == 0 {
			idx.extent = Box{MinX: e.X, MinY: e.Y, MaxX: e.X, MaxY: e.Y}
		} else {
			idx.extent.MinX = math.Min(idx.extent.MinX, e.X)
			idx.extent.MinY = math.Min(idx.extent.MinY, e.Y)
			idx.extent.MaxX = math.Max(idx.extent.MaxX, e.X)
			idx.extent.MaxY = math.Max(idx.extent.MaxY, e.Y)
		}
		kept = append(kept, e)
	}
	idx.size = len(kept)

	switch opts.Kind {
	case KindRTree:
		idx.tree = newRTree(kept, idx.extent)
	default:
		idx.tree = newKDTree(kept, opts.NodeSize)
	}

	return idx
}

// Search returns the ids of all entries whose position lies inside box,
// in ascending order.
func (idx *Index) Search(box Box) []int {
	if idx.size == 0 || box.hasNaN() {
		return nil
	}

	// Clamp to the indexed extent so infinite query edges stay usable.
	q := Box{
		MinX: math.Max(box.MinX, idx.extent.MinX),
		MinY: math.Max(box.MinY, idx.extent.MinY),
		MaxX: math.Min(box.MaxX, idx.extent.MaxX),
		MaxY: math.Min(box.MaxY, idx.extent.MaxY),
	}
	if q.MinX > q.MaxX || q.MinY > q.MaxY {
		return nil
	}

	hits := roaring.New()
	idx.tree.search(q, func(id int) {
		hits.Add(uint32(id))
	})

	if hits.IsEmpty() {
		return nil
	}

	result := make([]int, 0, hits.GetCardinality())
	it := hits.Iterator()
	for it.HasNext() {
		result = append(result, int(it.Next()))
	}
	return result
}

// Kind returns the tree implementation in use.
func (idx *Index) Kind() Kind { return idx.kind }

// Stamp returns the data stamp the index was built against.
func (idx *Index) Stamp() uint64 { return idx.stamp }

// MaxRadius returns the largest finite footprint radius among indexed entries.
func (idx *Index) MaxRadius() float64 { return idx.maxRadius }

// Len returns the number of indexed entries.
func (idx *Index) Len() int { return idx.size }

// Extent returns the bounding box of indexed positions.
// ok is false for an empty index.
func (idx *Index) Extent() (extent Box, ok bool) {
	return idx.extent, idx.size > 0
}

// ExcludedCount returns how many entries were left out for non-finite positions.
func (idx *Index) ExcludedCount() int {
	return int(idx.excluded.GetCardinality())
}

// Excluded returns the ids left out for non-finite positions, ascending.
func (idx *Index) Excluded() []int {
	ids := idx.excluded.ToArray()
	result := make([]int, len(ids))
	for i, id := range ids {
		result[i] = int(id)
	}
	return result
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
