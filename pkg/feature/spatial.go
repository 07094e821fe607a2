package feature

import "math"

// Point is a coordinate in world or display space.
//
// Z is carried through to geometry buffers but ignored by spatial queries.
type Point struct {
	X, Y, Z float64
}

// IsFinite reports whether X and Y are both finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Bounds represents an axis-aligned box.
//
// Bounds are inclusive on every edge.
type Bounds struct {
	MinX float64 // Western edge
	MaxX float64 // Eastern edge
	MinY float64 // Southern edge
	MaxY float64 // Northern edge
}

// BoundsFromCorners returns the box spanned by two opposite corners in any order.
func BoundsFromCorners(a, b Point) Bounds {
	return Bounds{
		MinX: math.Min(a.X, b.X),
		MaxX: math.Max(a.X, b.X),
		MinY: math.Min(a.Y, b.Y),
		MaxY: math.Max(a.Y, b.Y),
	}
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, other.MinX),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// pointsBounds calculates the bounding box of the finite points.
// ok is false when no point is finite.
func pointsBounds(points []Point) (bounds Bounds, ok bool) {
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		if !ok {
			bounds = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
			ok = true
			continue
		}
		if p.X < bounds.MinX {
			bounds.MinX = p.X
		}
		if p.X > bounds.MaxX {
			bounds.MaxX = p.X
		}
		if p.Y < bounds.MinY {
			bounds.MinY = p.Y
		}
		if p.Y > bounds.MaxY {
			bounds.MaxY = p.Y
		}
	}
	return bounds, ok
}
