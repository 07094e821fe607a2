package feature

import (
	"fmt"
)

// UnknownPropertyError indicates a style property that was never set.
type UnknownPropertyError struct {
	Property string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("unknown style property %q", e.Property)
}

// StyleTypeError indicates a style value of the wrong type or arity.
type StyleTypeError struct {
	Property string
	Index    int
	Want     string
	Got      any
}

func (e *StyleTypeError) Error() string {
	return fmt.Sprintf("style property %q at element %d: want %s, got %T",
		e.Property, e.Index, e.Want, e.Got)
}

// EvaluatorError wraps an error returned by a per-element style evaluator.
type EvaluatorError struct {
	Property string
	Index    int
	Err      error
}

func (e *EvaluatorError) Error() string {
	return fmt.Sprintf("style property %q at element %d: %v", e.Property, e.Index, e.Err)
}

func (e *EvaluatorError) Unwrap() error {
	return e.Err
}

// IndexRangeError indicates an element index outside the current data assignment.
// Indices returned by earlier queries become invalid after SetData or SetPositions.
type IndexRangeError struct {
	Index int
	Len   int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("element index %d out of range [0,%d)", e.Index, e.Len)
}
