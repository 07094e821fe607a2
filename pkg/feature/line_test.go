package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine() *LineFeature {
	opts := DefaultOptions()
	opts.Clock = NewClock()
	return NewLineFeature(opts)
}

func TestLineDefaults(t *testing.T) {
	f := newTestLine()
	assert.Equal(t, "line", f.Kind())
	assert.Equal(t, []string{StyleColor, StylePattern, StylePosition, StyleWidth}, f.Style().Names())

	f.SetPositions([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	g, err := f.Geometry()
	require.NoError(t, err)

	assert.Equal(t, 2, g.Count)
	assert.Equal(t, []float32{0, 0, 0, 1, 1, 0}, g.Positions)
	assert.Equal(t, []float32{1, 1}, g.Width)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1}, g.Color)
	assert.Equal(t, PatternSolid, g.Pattern)
}

func TestLinePositionsCopied(t *testing.T) {
	f := newTestLine()
	positions := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	f.SetPositions(positions)
	positions[1] = Point{X: 5, Y: 5}

	got, err := f.Positions()
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, got)
}

func TestLineStyle(t *testing.T) {
	f := newTestLine()
	f.SetPositions([]Point{{X: 0}, {X: 1}, {X: 2}})
	f.SetStyle(StyleWidth, Func(func(_ any, i int) float64 { return float64(i) + 0.5 }))
	f.SetStyle(StyleColor, Const(Color{R: 0, G: 0, B: 1}))
	f.SetStyle(StylePattern, Const(PatternDashed))

	g, err := f.Geometry()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1.5, 2.5}, g.Width)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}, g.Color)
	assert.Equal(t, PatternDashed, g.Pattern)
}

func TestLineBuildGates(t *testing.T) {
	f := newTestLine()
	f.SetPositions([]Point{{X: 0}, {X: 1}})
	assert.True(t, f.NeedsRebuild())

	f.MarkBuilt()
	f.MarkUpdated()
	assert.False(t, f.NeedsRebuild())
	assert.False(t, f.NeedsUpdate())

	before := f.DataStamp()
	f.SetStyle(StyleWidth, Const(3.0))
	assert.Greater(t, f.DataStamp(), before)
	assert.True(t, f.NeedsRebuild())
	assert.True(t, f.NeedsUpdate())
}

func TestLineSetPositionsBypassesPositionStyle(t *testing.T) {
	f := newTestLine()
	f.SetStyle(StylePosition, Func(func(d any, _ int) Point {
		return Point{X: d.([2]float64)[0], Y: d.([2]float64)[1]}
	}))
	f.SetPositions([]Point{{X: 1, Y: 2}, {X: 3, Y: 4}})

	geom, err := f.Geometry()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 0, 3, 4, 0}, geom.Positions)
}

func TestLineGeometryError(t *testing.T) {
	f := newTestLine()
	f.SetData([]any{"not a point"})

	_, err := f.Geometry()
	var typeErr *StyleTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, StylePosition, typeErr.Property)
}
