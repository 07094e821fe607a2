package spatial

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// rtreeItem wraps an entry for R-tree storage.
type rtreeItem struct {
	id   int
	x, y float64
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial interface.
func (it *rtreeItem) Bounds() rtreego.Rect {
	return it.rect
}

// rTree is an R-tree backed tree. Points are stored as tiny rectangles
// because rtreego requires non-zero extents, so every search is followed by
// an exact containment test on the stored position.
type rTree struct {
	rt  *rtreego.Rtree
	pad float64
}

func newRTree(entries []Entry, extent Box) *rTree {
	// Padding scales with coordinate magnitude so it survives float rounding.
	magnitude := math.Max(
		math.Max(math.Abs(extent.MinX), math.Abs(extent.MaxX)),
		math.Max(math.Abs(extent.MinY), math.Abs(extent.MaxY)),
	)
	pad := 1e-9 * math.Max(1, magnitude)

	items := make([]rtreego.Spatial, 0, len(entries))
	for _, e := range entries {
		rect, err := rtreego.NewRect(rtreego.Point{e.X, e.Y}, []float64{pad, pad})
		if err != nil {
			continue
		}
		items = append(items, &rtreeItem{id: e.ID, x: e.X, y: e.Y, rect: rect})
	}

	// 2D, min=25 children, max=50 children; bulk loaded.
	return &rTree{
		rt:  rtreego.NewTree(2, 25, 50, items...),
		pad: pad,
	}
}

func (t *rTree) search(box Box, visit func(id int)) {
	// Grow the query by pad on every side: rtreego treats touching
	// rectangles as disjoint, and boundary points must still match.
	point := rtreego.Point{box.MinX - t.pad, box.MinY - t.pad}
	lengths := []float64{
		box.MaxX - box.MinX + 2*t.pad,
		box.MaxY - box.MinY + 2*t.pad,
	}
	queryRect, err := rtreego.NewRect(point, lengths)
	if err != nil {
		return
	}

	for _, spatial := range t.rt.SearchIntersect(queryRect) {
		item := spatial.(*rtreeItem)
		if box.Contains(item.x, item.y) {
			visit(item.id)
		}
	}
}
