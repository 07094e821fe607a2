package feature

import "fmt"

// VerticesPerPoint is the number of vertices a quad-based renderer emits per
// point marker: two triangles.
const VerticesPerPoint = 6

// unitQuad holds the corner offsets of the two triangles covering a marker,
// in units of the footprint radius.
var unitQuad = [VerticesPerPoint][2]float32{
	{-1, 1}, {-1, -1}, {1, 1},
	{-1, -1}, {1, -1}, {1, 1},
}

// PointGeometry holds resolved per-element attributes of a point feature,
// laid out as flat arrays ready for upload.
//
// Booleans are stored as 0 or 1.
type PointGeometry struct {
	Positions     []float32 // xyz per element
	Radius        []float32
	StrokeWidth   []float32
	FillColor     []float32 // rgb per element
	Fill          []float32
	StrokeColor   []float32 // rgb per element
	Stroke        []float32
	FillOpacity   []float32
	StrokeOpacity []float32

	// Unit holds per-vertex quad offsets. It is nil until Expand.
	Unit []float32

	// Count is the number of elements, or of vertices after Expand.
	Count int
}

// Geometry resolves every style property for every element.
//
// Elements with non-finite positions are included as-is; renderers clip them.
// The first evaluator error aborts the build.
func (f *PointFeature) Geometry() (*PointGeometry, error) {
	n := len(f.data)
	g := &PointGeometry{
		Positions:     make([]float32, 0, n*3),
		Radius:        make([]float32, 0, n),
		StrokeWidth:   make([]float32, 0, n),
		FillColor:     make([]float32, 0, n*3),
		Fill:          make([]float32, 0, n),
		StrokeColor:   make([]float32, 0, n*3),
		Stroke:        make([]float32, 0, n),
		FillOpacity:   make([]float32, 0, n),
		StrokeOpacity: make([]float32, 0, n),
		Count:         n,
	}
	for i, d := range f.data {
		p, err := f.position(d, i)
		if err != nil {
			return nil, fmt.Errorf("point geometry: %w", err)
		}
		if err := g.appendElement(f.style, p, d, i); err != nil {
			return nil, fmt.Errorf("point geometry: %w", err)
		}
	}
	return g, nil
}

func (g *PointGeometry) appendElement(style *StyleTable, p Point, d any, i int) error {
	radius, err := style.ResolveFloat(StyleRadius, d, i)
	if err != nil {
		return err
	}
	strokeWidth, err := style.ResolveFloat(StyleStrokeWidth, d, i)
	if err != nil {
		return err
	}
	fillColor, err := style.ResolveColor(StyleFillColor, d, i)
	if err != nil {
		return err
	}
	fill, err := style.ResolveBool(StyleFill, d, i)
	if err != nil {
		return err
	}
	strokeColor, err := style.ResolveColor(StyleStrokeColor, d, i)
	if err != nil {
		return err
	}
	stroke, err := style.ResolveBool(StyleStroke, d, i)
	if err != nil {
		return err
	}
	fillOpacity, err := style.ResolveFloat(StyleFillOpacity, d, i)
	if err != nil {
		return err
	}
	strokeOpacity, err := style.ResolveFloat(StyleStrokeOpacity, d, i)
	if err != nil {
		return err
	}

	g.Positions = append(g.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	g.Radius = append(g.Radius, float32(radius))
	g.StrokeWidth = append(g.StrokeWidth, float32(strokeWidth))
	g.FillColor = append(g.FillColor, float32(fillColor.R), float32(fillColor.G), float32(fillColor.B))
	g.Fill = append(g.Fill, boolToFloat(fill))
	g.StrokeColor = append(g.StrokeColor, float32(strokeColor.R), float32(strokeColor.G), float32(strokeColor.B))
	g.Stroke = append(g.Stroke, boolToFloat(stroke))
	g.FillOpacity = append(g.FillOpacity, float32(fillOpacity))
	g.StrokeOpacity = append(g.StrokeOpacity, float32(strokeOpacity))
	return nil
}

// Expand returns a copy with every per-element attribute repeated for each
// of the VerticesPerPoint quad vertices, and Unit filled with quad offsets.
func (g *PointGeometry) Expand() *PointGeometry {
	n := g.Count
	out := &PointGeometry{
		Positions:     repeat(g.Positions, 3, n),
		Radius:        repeat(g.Radius, 1, n),
		StrokeWidth:   repeat(g.StrokeWidth, 1, n),
		FillColor:     repeat(g.FillColor, 3, n),
		Fill:          repeat(g.Fill, 1, n),
		StrokeColor:   repeat(g.StrokeColor, 3, n),
		Stroke:        repeat(g.Stroke, 1, n),
		FillOpacity:   repeat(g.FillOpacity, 1, n),
		StrokeOpacity: repeat(g.StrokeOpacity, 1, n),
		Unit:          make([]float32, 0, n*VerticesPerPoint*2),
		Count:         n * VerticesPerPoint,
	}
	for i := 0; i < n; i++ {
		for _, u := range unitQuad {
			out.Unit = append(out.Unit, u[0], u[1])
		}
	}
	return out
}

// repeat copies each width-sized group of src VerticesPerPoint times.
func repeat(src []float32, width, n int) []float32 {
	dst := make([]float32, 0, n*width*VerticesPerPoint)
	for i := 0; i < n; i++ {
		group := src[i*width : (i+1)*width]
		for v := 0; v < VerticesPerPoint; v++ {
			dst = append(dst, group...)
		}
	}
	return dst
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
