package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsFromCorners(t *testing.T) {
	want := Bounds{MinX: -1, MaxX: 3, MinY: -2, MaxY: 4}
	assert.Equal(t, want, BoundsFromCorners(Point{X: -1, Y: -2}, Point{X: 3, Y: 4}))
	assert.Equal(t, want, BoundsFromCorners(Point{X: 3, Y: -2}, Point{X: -1, Y: 4}))
}

func TestBounds(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(10, 5))
	assert.False(t, b.Contains(10.1, 5))

	assert.True(t, b.Intersects(Bounds{MinX: 10, MaxX: 20, MinY: 5, MaxY: 6}))
	assert.False(t, b.Intersects(Bounds{MinX: 11, MaxX: 20, MinY: 0, MaxY: 5}))

	assert.Equal(t, Bounds{MinX: -1, MaxX: 11, MinY: -1, MaxY: 6}, b.Expand(1))
	assert.Equal(t, Bounds{MinX: -5, MaxX: 10, MinY: 0, MaxY: 8},
		b.Union(Bounds{MinX: -5, MaxX: 1, MinY: 1, MaxY: 8}))
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{X: 1, Y: 2, Z: math.NaN()}.IsFinite())
	assert.False(t, Point{X: math.NaN(), Y: 2}.IsFinite())
	assert.False(t, Point{X: 1, Y: math.Inf(-1)}.IsFinite())
}
