package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointGeometryDefaults(t *testing.T) {
	f := newTestPoints()
	f.SetPositions([]Point{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5}})

	g, err := f.Geometry()
	require.NoError(t, err)

	assert.Equal(t, 2, g.Count)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 0}, g.Positions)
	assert.Equal(t, []float32{10, 10}, g.Radius)
	assert.Equal(t, []float32{1, 1}, g.StrokeWidth)
	assert.Equal(t, []float32{1, 0, 0, 1, 0, 0}, g.FillColor)
	assert.Equal(t, []float32{1, 1}, g.Fill)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1}, g.StrokeColor)
	assert.Equal(t, []float32{0, 0}, g.Stroke)
	assert.Equal(t, []float32{1, 1}, g.FillOpacity)
	assert.Equal(t, []float32{1, 1}, g.StrokeOpacity)
	assert.Nil(t, g.Unit)
}

func TestPointGeometryPerElementStyle(t *testing.T) {
	f := newTestPoints()
	f.SetPositions([]Point{{X: 0}, {X: 1}, {X: 2}})
	f.SetStyle(StyleRadius, Func(func(_ any, i int) float64 { return float64(i + 1) }))
	f.SetStyle(StyleStroke, Func(func(_ any, i int) float64 { return []float64{1, 0.75, 2}[i] }))
	f.SetStyle(StyleFillColor, Const([3]float64{0, 0.5, 1}))

	g, err := f.Geometry()
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 2, 3}, g.Radius)
	assert.Equal(t, []float32{1, 0, 1}, g.Stroke)
	assert.Equal(t, []float32{0, 0.5, 1, 0, 0.5, 1, 0, 0.5, 1}, g.FillColor)
}

func TestPointGeometryExpand(t *testing.T) {
	f := newTestPoints()
	f.SetPositions([]Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	f.SetStyle(StyleRadius, Func(func(_ any, i int) float64 { return float64(i + 1) }))

	g, err := f.Geometry()
	require.NoError(t, err)
	quads := g.Expand()

	assert.Equal(t, 2*VerticesPerPoint, quads.Count)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2}, quads.Radius)
	assert.Len(t, quads.Positions, 3*2*VerticesPerPoint)
	assert.Equal(t, []float32{1, 2, 0, 1, 2, 0}, quads.Positions[:6])
	assert.Equal(t, []float32{3, 4, 0}, quads.Positions[3*VerticesPerPoint:3*VerticesPerPoint+3])
	assert.Len(t, quads.FillColor, 3*2*VerticesPerPoint)

	wantUnit := []float32{-1, 1, -1, -1, 1, 1, -1, -1, 1, -1, 1, 1}
	require.Len(t, quads.Unit, 2*2*VerticesPerPoint)
	assert.Equal(t, wantUnit, quads.Unit[:12])
	assert.Equal(t, wantUnit, quads.Unit[12:])

	// The source geometry is unchanged.
	assert.Equal(t, 2, g.Count)
	assert.Nil(t, g.Unit)
}

func TestPointGeometryEmpty(t *testing.T) {
	g, err := newTestPoints().Geometry()
	require.NoError(t, err)
	assert.Equal(t, 0, g.Count)
	assert.Empty(t, g.Expand().Unit)
}

func TestPointGeometryStyleError(t *testing.T) {
	f := newTestPoints()
	f.SetPositions([]Point{{X: 0}, {X: 1}})
	f.SetStyle(StyleFillColor, Const("red"))

	_, err := f.Geometry()
	var typeErr *StyleTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, StyleFillColor, typeErr.Property)
	assert.Equal(t, 0, typeErr.Index)
}
