package feature

import "fmt"

// Line patterns understood by LineGeometry consumers.
const (
	PatternSolid  = "solid"
	PatternDashed = "dashed"
	PatternDotted = "dotted"
)

// DefaultLineStyle returns the style every new LineFeature starts with.
func DefaultLineStyle() map[string]StyleValue {
	return map[string]StyleValue{
		StylePosition: Func(func(d any, _ int) any { return d }),
		StyleWidth:    Const(1.0),
		StyleColor:    Const(Color{R: 1, G: 1, B: 1}),
		StylePattern:  Const(PatternSolid),
	}
}

// LineFeature is a polyline whose vertices are the feature's elements.
//
// Lines are drawn but not hit-tested, so LineFeature is Buildable only.
type LineFeature struct {
	*FeatureCore
}

// NewLineFeature creates an empty line feature with the default line style.
func NewLineFeature(opts Options) *LineFeature {
	core := newFeatureCore("line", opts, StylePosition, StyleWidth)
	core.style.SetAll(DefaultLineStyle())
	return &LineFeature{FeatureCore: core}
}

// LineGeometry holds resolved per-vertex attributes of a line feature.
type LineGeometry struct {
	Positions []float32 // xyz per vertex
	Width     []float32
	Color     []float32 // rgb per vertex
	Pattern   string
	Count     int
}

// Geometry resolves every style property for every vertex.
//
// The pattern is resolved once, for the first vertex; a line has a single
// dash pattern.
func (f *LineFeature) Geometry() (*LineGeometry, error) {
	n := len(f.data)
	g := &LineGeometry{
		Positions: make([]float32, 0, n*3),
		Width:     make([]float32, 0, n),
		Color:     make([]float32, 0, n*3),
		Pattern:   PatternSolid,
		Count:     n,
	}
	for i, d := range f.data {
		p, err := f.position(d, i)
		if err != nil {
			return nil, fmt.Errorf("line geometry: %w", err)
		}
		w, err := f.style.ResolveFloat(StyleWidth, d, i)
		if err != nil {
			return nil, fmt.Errorf("line geometry: %w", err)
		}
		c, err := f.style.ResolveColor(StyleColor, d, i)
		if err != nil {
			return nil, fmt.Errorf("line geometry: %w", err)
		}
		g.Positions = append(g.Positions, float32(p.X), float32(p.Y), float32(p.Z))
		g.Width = append(g.Width, float32(w))
		g.Color = append(g.Color, float32(c.R), float32(c.G), float32(c.B))
	}
	if n > 0 {
		pattern, err := f.style.ResolveString(StylePattern, f.data[0], 0)
		if err != nil {
			return nil, fmt.Errorf("line geometry: %w", err)
		}
		g.Pattern = pattern
	}
	return g, nil
}

var _ Buildable = (*LineFeature)(nil)
