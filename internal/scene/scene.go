// Package scene loads point scenes from YAML for the geopick command.
//
// A scene lists points in world coordinates, a shared style, and an optional
// viewport that maps world to display coordinates:
//
//	index: rtree
//	viewport:
//	  center: [0, 0]
//	  unitsPerPixel: 0.5
//	  width: 800
//	  height: 600
//	style:
//	  radius: 5
//	  stroke: true
//	  strokeWidth: 2
//	points:
//	  - {x: 0, y: 0, label: origin}
//	  - {x: 100, y: 0, radius: 12}
//	  - {x: .nan, y: 0}
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beetlebugorg/geofeature/pkg/feature"
	"gopkg.in/yaml.v3"
)

// Scene is a decoded scene file.
type Scene struct {
	Index    string    `yaml:"index,omitempty"`
	Viewport *Viewport `yaml:"viewport,omitempty"`
	Style    Style     `yaml:"style,omitempty"`
	Points   []Point   `yaml:"points"`
}

// Viewport describes an orthographic world-to-display transform.
type Viewport struct {
	Center        [2]float64 `yaml:"center"`
	UnitsPerPixel float64    `yaml:"unitsPerPixel"`
	Width         float64    `yaml:"width"`
	Height        float64    `yaml:"height"`
}

// Style holds scene-wide style constants. Unset fields keep the point
// feature defaults.
type Style struct {
	Radius      *float64  `yaml:"radius,omitempty"`
	Stroke      *bool     `yaml:"stroke,omitempty"`
	StrokeWidth *float64  `yaml:"strokeWidth,omitempty"`
	FillColor   []float64 `yaml:"fillColor,omitempty"`
	StrokeColor []float64 `yaml:"strokeColor,omitempty"`
}

// Point is one scene element. Radius, Stroke and StrokeWidth override the
// scene style for this point only.
type Point struct {
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	Z           float64  `yaml:"z,omitempty"`
	Label       string   `yaml:"label,omitempty"`
	Radius      *float64 `yaml:"radius,omitempty"`
	Stroke      *bool    `yaml:"stroke,omitempty"`
	StrokeWidth *float64 `yaml:"strokeWidth,omitempty"`
}

// ValidationError describes an invalid scene field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scene: %s: %s", e.Field, e.Message)
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field ranges. Non-finite point coordinates are allowed;
// the spatial index leaves such points out.
func (s *Scene) Validate() error {
	if _, err := feature.ParseIndexKind(s.Index); err != nil {
		return &ValidationError{Field: "index", Message: err.Error()}
	}
	if v := s.Viewport; v != nil {
		if v.UnitsPerPixel <= 0 {
			return &ValidationError{Field: "viewport.unitsPerPixel", Message: "must be positive"}
		}
		if v.Width <= 0 || v.Height <= 0 {
			return &ValidationError{Field: "viewport", Message: "width and height must be positive"}
		}
	}
	if c := s.Style.FillColor; c != nil && len(c) != 3 {
		return &ValidationError{Field: "style.fillColor", Message: "want 3 components"}
	}
	if c := s.Style.StrokeColor; c != nil && len(c) != 3 {
		return &ValidationError{Field: "style.strokeColor", Message: "want 3 components"}
	}
	return nil
}

// IndexKind returns the configured index kind.
func (s *Scene) IndexKind() feature.IndexKind {
	kind, _ := feature.ParseIndexKind(s.Index)
	return kind
}

// Transform returns the scene viewport, or the identity transform when the
// scene has none.
func (s *Scene) Transform() feature.Transform {
	if s.Viewport == nil {
		return feature.IdentityTransform{}
	}
	return feature.Viewport{
		Center:        feature.Point{X: s.Viewport.Center[0], Y: s.Viewport.Center[1]},
		UnitsPerPixel: s.Viewport.UnitsPerPixel,
		Width:         s.Viewport.Width,
		Height:        s.Viewport.Height,
	}
}

// Feature builds a point feature holding the scene's points as data.
// opts.Transform is replaced by the scene transform.
func (s *Scene) Feature(opts feature.Options) *feature.PointFeature {
	opts.Transform = s.Transform()
	f := feature.NewPointFeature(opts)

	f.SetStyle(feature.StylePosition, feature.Func(func(d any, _ int) feature.Point {
		p := d.(Point)
		return feature.Point{X: p.X, Y: p.Y, Z: p.Z}
	}))

	f.SetStyle(feature.StyleRadius, override(feature.StyleRadius, s.Style.Radius,
		func(p Point) *float64 { return p.Radius }))
	f.SetStyle(feature.StyleStrokeWidth, override(feature.StyleStrokeWidth, s.Style.StrokeWidth,
		func(p Point) *float64 { return p.StrokeWidth }))
	f.SetStyle(feature.StyleStroke, override(feature.StyleStroke, s.Style.Stroke,
		func(p Point) *bool { return p.Stroke }))

	if c := s.Style.FillColor; c != nil {
		f.SetStyle(feature.StyleFillColor, feature.Const(feature.Color{R: c[0], G: c[1], B: c[2]}))
	}
	if c := s.Style.StrokeColor; c != nil {
		f.SetStyle(feature.StyleStrokeColor, feature.Const(feature.Color{R: c[0], G: c[1], B: c[2]}))
	}

	data := make([]any, len(s.Points))
	for i, p := range s.Points {
		data[i] = p
	}
	f.SetData(data)
	return f
}

// override returns a per-point evaluator for the named property. A point's
// own field wins over the scene style, which wins over the default.
func override[V any](name string, scene *V, field func(Point) *V) feature.StyleValue {
	fallback := feature.DefaultPointStyle()[name].Constant()
	if scene != nil {
		fallback = *scene
	}
	return feature.Func(func(d any, _ int) any {
		if v := field(d.(Point)); v != nil {
			return *v
		}
		return fallback
	})
}
