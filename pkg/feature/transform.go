package feature

// Transform converts between world and display coordinates.
//
// Implementations must be consistent: ToWorld(ToDisplay(p)) ≈ p. Display space
// is in pixels with Y growing downward, the inverse of world Y.
type Transform interface {
	ToDisplay(world Point) Point
	ToWorld(display Point) Point
}

// IdentityTransform maps world coordinates to identical display coordinates.
type IdentityTransform struct{}

func (IdentityTransform) ToDisplay(p Point) Point { return p }
func (IdentityTransform) ToWorld(p Point) Point   { return p }

// Viewport is a simple orthographic world-to-screen transform.
//
// Center is shown at the middle of a Width x Height pixel canvas and one pixel
// covers UnitsPerPixel world units. Display Y is inverted relative to world Y.
type Viewport struct {
	Center        Point
	UnitsPerPixel float64
	Width         float64
	Height        float64
}

// ToDisplay implements Transform.
func (v Viewport) ToDisplay(p Point) Point {
	scale := v.scale()
	return Point{
		X: (p.X-v.Center.X)/scale + v.Width/2,
		Y: v.Height/2 - (p.Y-v.Center.Y)/scale,
		Z: p.Z,
	}
}

// ToWorld implements Transform.
func (v Viewport) ToWorld(p Point) Point {
	scale := v.scale()
	return Point{
		X: (p.X-v.Width/2)*scale + v.Center.X,
		Y: (v.Height/2-p.Y)*scale + v.Center.Y,
		Z: p.Z,
	}
}

func (v Viewport) scale() float64 {
	if v.UnitsPerPixel <= 0 {
		return 1
	}
	return v.UnitsPerPixel
}
