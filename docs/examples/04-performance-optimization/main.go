package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

// Build a large random point set
func randomPositions(n int) []feature.Point {
	rng := rand.New(rand.NewSource(1))
	positions := make([]feature.Point, n)
	for i := range positions {
		positions[i] = feature.Point{
			X: rng.Float64()*10000 - 5000,
			Y: rng.Float64()*10000 - 5000,
		}
	}
	return positions
}

// Time one index rebuild and 1000 picks with the given index kind
func timePicks(kind feature.IndexKind, positions []feature.Point) {
	opts := feature.DefaultOptions()
	opts.IndexKind = kind
	points := feature.NewPointFeature(opts)
	points.SetPositions(positions)

	start := time.Now()
	if _, err := points.PointSearch(feature.Point{}); err != nil {
		log.Fatal(err)
	}
	build := time.Since(start)

	start = time.Now()
	matched := 0
	for i := 0; i < 1000; i++ {
		hit, err := points.PointSearch(feature.Point{X: float64(i), Y: float64(-i)})
		if err != nil {
			log.Fatal(err)
		}
		matched += hit.Len()
	}
	fmt.Printf("%-7s first query %-12v 1000 picks %-12v matched %d\n",
		kind, build, time.Since(start), matched)
}

func main() {
	positions := randomPositions(200000)

	// Batch all data changes before querying: each SetData makes the next
	// query rebuild the index
	for _, kind := range []feature.IndexKind{feature.IndexKDTree, feature.IndexRTree, feature.IndexNone} {
		timePicks(kind, positions)
	}
}
