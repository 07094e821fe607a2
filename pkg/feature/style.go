package feature

import (
	"fmt"
	"sort"
)

// Style property names understood by the built-in feature kinds.
const (
	StylePosition      = "position"
	StyleRadius        = "radius"
	StyleStroke        = "stroke"
	StyleStrokeWidth   = "strokeWidth"
	StyleStrokeColor   = "strokeColor"
	StyleStrokeOpacity = "strokeOpacity"
	StyleFill          = "fill"
	StyleFillColor     = "fillColor"
	StyleFillOpacity   = "fillOpacity"

	StyleWidth   = "width"
	StyleColor   = "color"
	StylePattern = "pattern"
)

// Evaluator computes a style value for one element.
//
// Evaluators must be pure: the result may depend only on the datum and its index.
type Evaluator func(datum any, index int) (any, error)

// Accessor resolves a style property for one element.
type Accessor func(datum any, index int) (any, error)

// StyleValue is either a constant or a per-element evaluator.
//
// Use Const, Func or FuncErr to build one.
type StyleValue struct {
	constant any
	eval     Evaluator
}

// Const returns a StyleValue that resolves to v for every element.
func Const(v any) StyleValue {
	return StyleValue{constant: v}
}

// Func returns a StyleValue computed per element by fn.
func Func[V any](fn func(datum any, index int) V) StyleValue {
	return StyleValue{eval: func(d any, i int) (any, error) {
		return fn(d, i), nil
	}}
}

// FuncErr returns a StyleValue computed per element by a fallible fn.
// A non-nil error aborts resolution and is returned to the caller.
func FuncErr(fn Evaluator) StyleValue {
	return StyleValue{eval: fn}
}

// IsConstant reports whether the value is the same for every element.
func (v StyleValue) IsConstant() bool {
	return v.eval == nil
}

// Constant returns the constant value, or nil for an evaluator.
func (v StyleValue) Constant() any {
	return v.constant
}

func (v StyleValue) accessor() Accessor {
	if v.eval == nil {
		c := v.constant
		return func(any, int) (any, error) { return c, nil }
	}
	return Accessor(v.eval)
}

// StyleTable maps property names to style values for one feature.
type StyleTable struct {
	values map[string]StyleValue
	stamp  Timestamp

	// onSet is called after every Set with the property name.
	onSet func(name string)
}

// NewStyleTable creates an empty table stamped by clock.
func NewStyleTable(clock *Clock) *StyleTable {
	return &StyleTable{
		values: make(map[string]StyleValue),
		stamp:  NewTimestamp(clock),
	}
}

// Set stores a property value and marks the table modified.
func (t *StyleTable) Set(name string, value StyleValue) {
	t.values[name] = value
	t.stamp.Modified()
	if t.onSet != nil {
		t.onSet(name)
	}
}

// SetAll stores every property in values.
func (t *StyleTable) SetAll(values map[string]StyleValue) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.Set(name, values[name])
	}
}

// Get returns an accessor for the named property.
func (t *StyleTable) Get(name string) (Accessor, bool) {
	v, ok := t.values[name]
	if !ok {
		return nil, false
	}
	return v.accessor(), true
}

// Value returns the raw StyleValue for the named property.
func (t *StyleTable) Value(name string) (StyleValue, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Resolve evaluates the named property for one element.
//
// Evaluator errors are wrapped in *EvaluatorError; they are never replaced by
// defaults.
func (t *StyleTable) Resolve(name string, datum any, index int) (any, error) {
	v, ok := t.values[name]
	if !ok {
		return nil, &UnknownPropertyError{Property: name}
	}
	if v.eval == nil {
		return v.constant, nil
	}
	out, err := v.eval(datum, index)
	if err != nil {
		return nil, &EvaluatorError{Property: name, Index: index, Err: err}
	}
	return out, nil
}

// Names returns the set property names in sorted order.
func (t *StyleTable) Names() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp returns the stamp of the last Set.
func (t *StyleTable) Stamp() Stamp {
	return t.stamp.Stamp()
}

// ResolveFloat resolves a numeric property.
func (t *StyleTable) ResolveFloat(name string, datum any, index int) (float64, error) {
	v, err := t.Resolve(name, datum, index)
	if err != nil {
		return 0, err
	}
	if f, ok := toFloat(v); ok {
		return f, nil
	}
	return 0, &StyleTypeError{Property: name, Index: index, Want: "number", Got: v}
}

// ResolveBool resolves a boolean property.
//
// Numbers are accepted for compatibility with numeric style tables: values
// of 1 or more are true.
func (t *StyleTable) ResolveBool(name string, datum any, index int) (bool, error) {
	v, err := t.Resolve(name, datum, index)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if f, ok := toFloat(v); ok {
		return f >= 1, nil
	}
	return false, &StyleTypeError{Property: name, Index: index, Want: "bool", Got: v}
}

// ResolveColor resolves a colour property.
func (t *StyleTable) ResolveColor(name string, datum any, index int) (Color, error) {
	v, err := t.Resolve(name, datum, index)
	if err != nil {
		return Color{}, err
	}
	switch c := v.(type) {
	case Color:
		return c, nil
	case *Color:
		if c != nil {
			return *c, nil
		}
	case [3]float64:
		return Color{R: c[0], G: c[1], B: c[2]}, nil
	case []float64:
		if len(c) == 3 {
			return Color{R: c[0], G: c[1], B: c[2]}, nil
		}
	}
	return Color{}, &StyleTypeError{Property: name, Index: index, Want: "rgb colour", Got: v}
}

// ResolvePoint resolves a position property.
func (t *StyleTable) ResolvePoint(name string, datum any, index int) (Point, error) {
	v, err := t.Resolve(name, datum, index)
	if err != nil {
		return Point{}, err
	}
	if p, ok := toPoint(v); ok {
		return p, nil
	}
	return Point{}, &StyleTypeError{Property: name, Index: index, Want: "2D or 3D point", Got: v}
}

// ResolveString resolves a string property.
func (t *StyleTable) ResolveString(name string, datum any, index int) (string, error) {
	v, err := t.Resolve(name, datum, index)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return "", &StyleTypeError{Property: name, Index: index, Want: "string", Got: v}
}

// Color is an RGB colour with components in [0, 1].
type Color struct {
	R, G, B float64
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toPoint(v any) (Point, bool) {
	switch p := v.(type) {
	case Point:
		return p, true
	case *Point:
		if p != nil {
			return *p, true
		}
	case [2]float64:
		return Point{X: p[0], Y: p[1]}, true
	case [3]float64:
		return Point{X: p[0], Y: p[1], Z: p[2]}, true
	case []float64:
		switch len(p) {
		case 2:
			return Point{X: p[0], Y: p[1]}, true
		case 3:
			return Point{X: p[0], Y: p[1], Z: p[2]}, true
		}
	}
	return Point{}, false
}
