package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/geofeature/pkg/feature"
)

type harbor struct {
	Name     string
	Lon, Lat float64
}

func main() {
	points := feature.NewPointFeature(feature.DefaultOptions())

	points.SetData([]any{
		harbor{"Boston", -71.05, 42.36},
		harbor{"Salem", -70.89, 42.52},
		harbor{"Plymouth", -70.66, 41.96},
	})
	points.SetStyle(feature.StylePosition, feature.Func(func(d any, _ int) feature.Point {
		h := d.(harbor)
		return feature.Point{X: h.Lon, Y: h.Lat}
	}))
	points.SetStyle(feature.StyleRadius, feature.Const(8.0))

	// 800x600 canvas centred on Boston Harbor, 0.001 degrees per pixel
	points.SetTransform(feature.Viewport{
		Center:        feature.Point{X: -71.0, Y: 42.3},
		UnitsPerPixel: 0.001,
		Width:         800,
		Height:        600,
	})

	// Simulated mouse position: 3 pixels right of Boston
	mouse := points.Transform().ToDisplay(feature.Point{X: -71.05, Y: 42.36})
	mouse.X += 3

	hit, err := points.PointSearch(mouse)
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range hit.Data {
		fmt.Printf("Under cursor: %s\n", d.(harbor).Name)
	}

	// Render loop: rebuild only when data or style changed
	for frame := 0; frame < 3; frame++ {
		if points.NeedsRebuild() {
			geom, err := points.Geometry()
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Frame %d: rebuilt %d vertices\n", frame, geom.Expand().Count)
			points.MarkBuilt()
		}
		if points.NeedsUpdate() {
			points.MarkUpdated()
		}
	}
}
