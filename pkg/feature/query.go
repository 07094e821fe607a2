package feature

import (
	"fmt"
	"math"
	"time"

	"github.com/beetlebugorg/geofeature/internal/spatial"
)

// pickTolerance widens the conservative pick box, in display units, so that
// ToWorld/ToDisplay round-off cannot drop an element sitting exactly on its
// footprint boundary. The exact distance test is not widened.
const pickTolerance = 1e-6

// PickResult holds the elements matched by a point search.
//
// Data[i] is the datum at element index Indices[i]. Indices are ascending.
type PickResult struct {
	Data    []any
	Indices []int
}

// Len returns the number of matched elements.
func (r PickResult) Len() int {
	return len(r.Indices)
}

// candidateSource yields conservative candidates for a world-space box.
type candidateSource interface {
	MaxRadius() float64
	Search(box spatial.Box) []int
}

// PointSearch returns every element whose footprint covers the display point.
//
// An element matches when the display-space distance from its position to
// display is at most its footprint radius. Picking disabled or an empty data
// set yields an empty result, not an error. Style evaluator errors are
// returned unchanged in meaning.
func (f *PointFeature) PointSearch(display Point) (PickResult, error) {
	start := time.Now()
	result, candidates, err := f.pointSearch(display)
	f.log.LogQuery(QueryPoint, candidates, result.Len(), err)
	f.opts.Metrics.RecordQuery(QueryPoint, result.Len(), time.Since(start), err)
	return result, err
}

func (f *PointFeature) pointSearch(display Point) (PickResult, int, error) {
	if !f.opts.SelectionAPI || len(f.data) == 0 {
		return PickResult{}, 0, nil
	}

	src, err := f.candidateSource()
	if err != nil {
		return PickResult{}, 0, err
	}

	// Display Y is inverted relative to world Y, so the display corner
	// (x-r, y+r) maps to the world lower-left and (x+r, y-r) to the
	// upper-right. BoundsFromCorners keeps the box valid for any transform.
	r := src.MaxRadius() + pickTolerance
	transform := f.opts.Transform
	lowerLeft := transform.ToWorld(Point{X: display.X - r, Y: display.Y + r})
	upperRight := transform.ToWorld(Point{X: display.X + r, Y: display.Y - r})
	box := BoundsFromCorners(lowerLeft, upperRight)

	candidates := src.Search(toBox(box))

	var result PickResult
	for _, i := range candidates {
		d := f.data[i]
		footprint, err := f.footprintRadius(d, i)
		if err != nil {
			return PickResult{}, len(candidates), err
		}
		if math.IsNaN(footprint) || math.IsInf(footprint, 0) {
			continue
		}
		p, err := f.position(d, i)
		if err != nil {
			return PickResult{}, len(candidates), err
		}
		dp := transform.ToDisplay(p)
		if math.Hypot(dp.X-display.X, dp.Y-display.Y) <= footprint {
			result.Data = append(result.Data, d)
			result.Indices = append(result.Indices, i)
		}
	}

	return result, len(candidates), nil
}

// BoxSearch returns the indices of elements whose world position lies in the
// inclusive rectangle [lowerLeft.X, upperRight.X] x [lowerLeft.Y, upperRight.Y],
// in ascending order.
//
// Footprint radii are not taken into account. Elements with non-finite
// positions never match.
func (f *PointFeature) BoxSearch(lowerLeft, upperRight Point) ([]int, error) {
	start := time.Now()
	indices, err := f.boxSearch(lowerLeft, upperRight)
	f.log.LogQuery(QueryBox, len(indices), len(indices), err)
	f.opts.Metrics.RecordQuery(QueryBox, len(indices), time.Since(start), err)
	return indices, err
}

func (f *PointFeature) boxSearch(lowerLeft, upperRight Point) ([]int, error) {
	if len(f.data) == 0 {
		return nil, nil
	}

	src, err := f.candidateSource()
	if err != nil {
		return nil, err
	}

	box := spatial.Box{
		MinX: lowerLeft.X,
		MinY: lowerLeft.Y,
		MaxX: upperRight.X,
		MaxY: upperRight.Y,
	}
	return src.Search(box), nil
}

// candidateSource returns the spatial index, rebuilding it if the data
// changed since it was built, or a linear scanner when indexing is disabled.
func (f *PointFeature) candidateSource() (candidateSource, error) {
	if f.opts.IndexKind == IndexNone {
		entries, err := f.entries()
		if err != nil {
			return nil, err
		}
		return newLinearSource(entries), nil
	}
	return f.ensureIndex()
}

// ensureIndex rebuilds the spatial index when it is missing or older than
// the current data assignment.
func (f *PointFeature) ensureIndex() (*spatial.Index, error) {
	if f.index != nil && Stamp(f.index.Stamp()) >= f.dataTime.Stamp() {
		return f.index, nil
	}

	// A superseded index must never answer a query, even if the rebuild fails.
	f.index = nil

	start := time.Now()
	entries, err := f.entries()
	if err != nil {
		return nil, fmt.Errorf("build spatial index: %w", err)
	}

	bopts := spatial.DefaultBuildOptions()
	if f.opts.IndexKind == IndexRTree {
		bopts.Kind = spatial.KindRTree
	}
	bopts.NodeSize = f.opts.NodeSize
	bopts.Stamp = uint64(f.dataTime.Stamp())
	idx := spatial.Build(entries, bopts)

	took := time.Since(start)
	f.log.LogIndexBuild(idx.Len(), idx.ExcludedCount(), idx.MaxRadius(), took)
	f.opts.Metrics.RecordIndexBuild(idx.Len(), idx.ExcludedCount(), took)

	f.index = idx
	return idx, nil
}

// entries snapshots positions and footprint radii of all elements.
func (f *PointFeature) entries() ([]spatial.Entry, error) {
	entries := make([]spatial.Entry, len(f.data))
	for i, d := range f.data {
		p, err := f.position(d, i)
		if err != nil {
			return nil, err
		}
		r, err := f.footprintRadius(d, i)
		if err != nil {
			return nil, err
		}
		entries[i] = spatial.Entry{ID: i, X: p.X, Y: p.Y, Radius: r}
	}
	return entries, nil
}

// IndexStamp returns the data stamp the current spatial index was built
// against, or 0 if no index has been built.
func (f *PointFeature) IndexStamp() Stamp {
	if f.index == nil {
		return 0
	}
	return Stamp(f.index.Stamp())
}

// IndexStats describes the current spatial index.
type IndexStats struct {
	Kind      IndexKind
	Indexed   int     // Elements in the tree
	Excluded  []int   // Elements left out for non-finite positions
	MaxRadius float64 // Largest finite footprint radius
	Stamp     Stamp   // Data stamp the index was built against

	// Extent bounds the indexed positions. HasExtent is false when no
	// element was indexed.
	Extent    Bounds
	HasExtent bool
}

// IndexStats rebuilds the spatial index if stale and describes it.
// With IndexNone the statistics describe a linear scan of the current data.
func (f *PointFeature) IndexStats() (IndexStats, error) {
	if f.opts.IndexKind == IndexNone {
		entries, err := f.entries()
		if err != nil {
			return IndexStats{}, err
		}
		src := newLinearSource(entries)
		positions := make([]Point, len(entries))
		for i, e := range entries {
			positions[i] = Point{X: e.X, Y: e.Y}
		}
		extent, ok := pointsBounds(positions)
		return IndexStats{
			Kind:      IndexNone,
			Indexed:   len(entries) - len(src.excluded),
			Excluded:  src.excluded,
			MaxRadius: src.maxRadius,
			Stamp:     f.dataTime.Stamp(),
			Extent:    extent,
			HasExtent: ok,
		}, nil
	}

	idx, err := f.ensureIndex()
	if err != nil {
		return IndexStats{}, err
	}
	extent, ok := idx.Extent()
	return IndexStats{
		Kind:      f.opts.IndexKind,
		Indexed:   idx.Len(),
		Excluded:  idx.Excluded(),
		MaxRadius: idx.MaxRadius(),
		Stamp:     Stamp(idx.Stamp()),
		Extent:    Bounds{MinX: extent.MinX, MinY: extent.MinY, MaxX: extent.MaxX, MaxY: extent.MaxY},
		HasExtent: ok,
	}, nil
}

// linearSource scans every element. It gives the same results as the
// spatial index and is used when indexing is disabled.
type linearSource struct {
	entries   []spatial.Entry
	excluded  []int
	maxRadius float64
}

func newLinearSource(entries []spatial.Entry) *linearSource {
	s := &linearSource{entries: entries}
	for _, e := range entries {
		if !isFinite(e.X) || !isFinite(e.Y) {
			s.excluded = append(s.excluded, e.ID)
			continue
		}
		if isFinite(e.Radius) && e.Radius > s.maxRadius {
			s.maxRadius = e.Radius
		}
	}
	return s
}

func (s *linearSource) MaxRadius() float64 { return s.maxRadius }

func (s *linearSource) Search(box spatial.Box) []int {
	var result []int
	for _, e := range s.entries {
		if isFinite(e.X) && isFinite(e.Y) && box.Contains(e.X, e.Y) {
			result = append(result, e.ID)
		}
	}
	return result
}

func toBox(b Bounds) spatial.Box {
	return spatial.Box{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
