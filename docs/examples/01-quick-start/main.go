package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

func main() {
	// Create a point feature with default options (k-d tree index, picking on)
	points := feature.NewPointFeature(feature.DefaultOptions())

	// Positions double as data; the default position style passes them through
	points.SetPositions([]feature.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
	})
	points.SetStyle(feature.StyleRadius, feature.Const(5.0))

	// Pick at a display point (identity transform: display == world)
	hit, err := points.PointSearch(feature.Point{X: 0, Y: 0})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Picked: %v\n", hit.Indices)

	// Select everything positioned inside a world box
	selected, err := points.BoxSearch(feature.Point{X: -1, Y: -1}, feature.Point{X: 101, Y: 1})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Selected: %v\n", selected)
}
