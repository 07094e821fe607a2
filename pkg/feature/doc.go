// Package feature provides the data and spatial query engine behind point and
// line map features.
//
// A feature owns an ordered sequence of data elements and a style table that
// maps property names to constants or per-element evaluators. Positions are
// resolved through the "position" style property. Point features answer
// interactive hit-tests through a lazily rebuilt spatial index; every feature
// tells an external renderer when its drawable representation is stale.
//
// # Basic Usage
//
//	points := feature.NewPointFeature(feature.DefaultOptions())
//	points.SetPositions([]feature.Point{{X: 0, Y: 0}, {X: 100, Y: 0}})
//	points.SetStyle(feature.StyleRadius, feature.Const(5.0))
//
//	hit, err := points.PointSearch(feature.Point{X: 0, Y: 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(hit.Indices) // [0]
//
// # Per-Element Style
//
// Style values are either constants or evaluators called with the datum and
// its index:
//
//	points.SetStyle(feature.StyleRadius, feature.Func(func(d any, i int) float64 {
//	    return d.(City).Population / 1e5
//	}))
//
// Evaluators that can fail use FuncErr. Their errors are returned from the
// query or build that resolved them, wrapped in *EvaluatorError.
//
// # Picking
//
// PointSearch takes a display-space point. An element is picked when the
// display distance to its position is at most its footprint radius: the
// radius style plus strokeWidth when stroke is enabled. The world/display
// mapping is supplied by a Transform:
//
//	points.SetTransform(feature.Viewport{
//	    Center:        feature.Point{X: -71.06, Y: 42.36},
//	    UnitsPerPixel: 0.001,
//	    Width:         800,
//	    Height:        600,
//	})
//
// BoxSearch selects elements whose world position lies inside a rectangle.
// Footprints are ignored.
//
// # Invalidation
//
// Every mutation is stamped by a monotonic Clock. The spatial index records
// the data stamp it was built against and is rebuilt on the next query after
// SetData, SetPositions, or a change to a geometry style property. Renderers
// poll NeedsRebuild and NeedsUpdate each frame:
//
//	if points.NeedsRebuild() {
//	    geom, err := points.Geometry()
//	    // upload geom
//	    points.MarkBuilt()
//	}
//	if points.NeedsUpdate() {
//	    // apply visibility and bin
//	    points.MarkUpdated()
//	}
//
// # Concurrency
//
// Features are not safe for concurrent use. The Clock is.
package feature
