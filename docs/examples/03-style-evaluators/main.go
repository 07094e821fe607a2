package main

import (
	"fmt"
	"log"
	"math"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

type sounding struct {
	X, Y  float64
	Depth float64 // metres
}

func main() {
	points := feature.NewPointFeature(feature.DefaultOptions())

	points.SetData([]any{
		sounding{0, 0, 2.5},
		sounding{10, 0, 12},
		sounding{20, 0, 40},
	})

	points.SetStyle(feature.StylePosition, feature.Func(func(d any, _ int) feature.Point {
		s := d.(sounding)
		return feature.Point{X: s.X, Y: s.Y}
	}))

	// Larger markers for deeper water
	points.SetStyle(feature.StyleRadius, feature.Func(func(d any, _ int) float64 {
		return 3 + math.Log2(1+d.(sounding).Depth)
	}))

	// Stroke shallow soundings in red
	points.SetStyle(feature.StyleStroke, feature.Func(func(d any, _ int) bool {
		return d.(sounding).Depth < 5
	}))
	points.SetStyle(feature.StyleStrokeColor, feature.Const(feature.Color{R: 1}))
	points.SetStyle(feature.StyleStrokeWidth, feature.Const(2.0))

	// Constant fill for every element
	points.SetStyle(feature.StyleFillColor, feature.Const(feature.Color{R: 0.2, G: 0.4, B: 0.8}))

	geom, err := points.Geometry()
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < geom.Count; i++ {
		footprint, err := points.FootprintRadius(i)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Element %d: radius %.2f stroke %.0f footprint %.2f\n",
			i, geom.Radius[i], geom.Stroke[i], footprint)
	}

	// A line through the soundings with its own style table
	line := feature.NewLineFeature(feature.DefaultOptions())
	line.SetPositions([]feature.Point{{X: 0}, {X: 10}, {X: 20}})
	line.SetStyle(feature.StylePattern, feature.Const(feature.PatternDashed))

	lineGeom, err := line.Geometry()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Line: %d vertices, pattern %s\n", lineGeom.Count, lineGeom.Pattern)
}
