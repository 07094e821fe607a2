package main

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

var errNoFix = errors.New("vessel has no position fix")

type vessel struct {
	Name     string
	Lon, Lat float64
	HasFix   bool
}

func main() {
	points := feature.NewPointFeature(feature.DefaultOptions())
	points.SetData([]any{
		vessel{"Aurora", -71.0, 42.3, true},
		vessel{"Boreas", 0, 0, false},
	})

	// Evaluators that can fail use FuncErr; the error reaches the caller
	points.SetStyle(feature.StylePosition, feature.FuncErr(func(d any, _ int) (any, error) {
		v := d.(vessel)
		if !v.HasFix {
			return nil, errNoFix
		}
		return feature.Point{X: v.Lon, Y: v.Lat}, nil
	}))

	_, err := points.PointSearch(feature.Point{X: -71.0, Y: 42.3})
	var evalErr *feature.EvaluatorError
	if errors.As(err, &evalErr) {
		fmt.Printf("Style %q failed for element %d: %v\n", evalErr.Property, evalErr.Index, evalErr.Err)
	}
	if errors.Is(err, errNoFix) {
		fmt.Println("Falling back to NaN positions for vessels without a fix")
	}

	// Non-finite positions are left out of the index instead of failing
	points.SetStyle(feature.StylePosition, feature.Func(func(d any, _ int) feature.Point {
		v := d.(vessel)
		if !v.HasFix {
			return feature.Point{X: math.NaN(), Y: math.NaN()}
		}
		return feature.Point{X: v.Lon, Y: v.Lat}
	}))

	hit, err := points.PointSearch(feature.Point{X: -71.0, Y: 42.3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Picked: %v\n", hit.Indices)

	stats, err := points.IndexStats()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Excluded from index: %v\n", stats.Excluded)

	// Wrong value types are reported, never replaced by defaults
	points.SetStyle(feature.StyleRadius, feature.Const("large"))
	_, err = points.PointSearch(feature.Point{})
	var typeErr *feature.StyleTypeError
	if errors.As(err, &typeErr) {
		fmt.Printf("Bad style value: %v\n", typeErr)
	}

	// Indices from a superseded data assignment are rejected by Datum
	points.SetData(nil)
	if _, err := points.Datum(hit.Indices[0]); err != nil {
		fmt.Printf("Stale index: %v\n", err)
	}
}
