package feature

import (
	"github.com/beetlebugorg/geofeature/internal/spatial"
)

// DefaultPointStyle returns the style every new PointFeature starts with.
//
// The position accessor returns the datum itself, so data made of Point,
// [2]float64, [3]float64 or []float64 values needs no position style.
// Markers start filled and unstroked with a 1 unit stroke width, so turning
// the stroke on grows the footprint by one unit.
func DefaultPointStyle() map[string]StyleValue {
	return map[string]StyleValue{
		StylePosition:      Func(func(d any, _ int) any { return d }),
		StyleRadius:        Const(10.0),
		StyleStroke:        Const(false),
		StyleStrokeWidth:   Const(1.0),
		StyleStrokeColor:   Const(Color{R: 1, G: 1, B: 1}),
		StyleStrokeOpacity: Const(1.0),
		StyleFill:          Const(true),
		StyleFillColor:     Const(Color{R: 1, G: 0, B: 0}),
		StyleFillOpacity:   Const(1.0),
	}
}

// PointFeature is a set of circular point markers with per-element style.
//
// Point features answer pick and box queries through a spatial index that
// is rebuilt lazily, on the first query after the data changes.
//
// Example:
//
//	points := feature.NewPointFeature(feature.DefaultOptions())
//	points.SetData(cities)
//	points.SetStyle(feature.StylePosition, feature.Func(func(d any, _ int) any {
//	    c := d.(City)
//	    return feature.Point{X: c.Lon, Y: c.Lat}
//	}))
//	points.SetStyle(feature.StyleRadius, feature.Const(6.0))
//
//	hit, err := points.PointSearch(feature.Point{X: mouseX, Y: mouseY})
type PointFeature struct {
	*FeatureCore

	// index is nil until the first query and whenever it has been discarded.
	index *spatial.Index
}

// NewPointFeature creates an empty point feature with the default point style.
func NewPointFeature(opts Options) *PointFeature {
	core := newFeatureCore("point", opts,
		StylePosition, StyleRadius, StyleStroke, StyleStrokeWidth)
	core.style.SetAll(DefaultPointStyle())
	return &PointFeature{FeatureCore: core}
}

// SetSelectionAPI enables or disables point picking.
func (f *PointFeature) SetSelectionAPI(enabled bool) {
	f.opts.SelectionAPI = enabled
}

// SelectionAPI reports whether point picking is enabled.
func (f *PointFeature) SelectionAPI() bool {
	return f.opts.SelectionAPI
}

// SetTransform replaces the world/display transform used by PointSearch.
// The spatial index is in world space and is not affected.
func (f *PointFeature) SetTransform(t Transform) {
	if t == nil {
		t = IdentityTransform{}
	}
	f.opts.Transform = t
}

// Transform returns the world/display transform used by PointSearch.
func (f *PointFeature) Transform() Transform {
	return f.opts.Transform
}

// FootprintRadius returns the element's on-screen hit radius:
// radius plus strokeWidth when stroke is enabled. Negative results are
// clamped to 0.
func (f *PointFeature) FootprintRadius(index int) (float64, error) {
	d, err := f.Datum(index)
	if err != nil {
		return 0, err
	}
	return f.footprintRadius(d, index)
}

func (f *PointFeature) footprintRadius(d any, i int) (float64, error) {
	radius, err := f.style.ResolveFloat(StyleRadius, d, i)
	if err != nil {
		return 0, err
	}
	stroke, err := f.style.ResolveBool(StyleStroke, d, i)
	if err != nil {
		return 0, err
	}
	if stroke {
		width, err := f.style.ResolveFloat(StyleStrokeWidth, d, i)
		if err != nil {
			return 0, err
		}
		radius += width
	}
	if radius < 0 {
		radius = 0
	}
	return radius, nil
}

var (
	_ Queryable = (*PointFeature)(nil)
	_ Buildable = (*PointFeature)(nil)
)
