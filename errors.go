package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a canvas is created with a width
	// or height outside the supported range.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrOutOfRange is returned when a pixel coordinate falls outside the
	// canvas.
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Axis names used in error messages.
const (
	AxisWidth  = "width"
	AxisHeight = "height"
	AxisRow    = "row"
	AxisCol    = "col"
)

// DimensionError describes a rejected canvas dimension. Multiple is zero
// when the axis has no divisibility rule.
type DimensionError struct {
	Axis     string
	Value    int
	Min, Max int
	Multiple int
}

func (e *DimensionError) Error() string {
	if e.Multiple > 0 {
		return fmt.Sprintf("invalid %s %d: should be in range [%d ... %d] and divisible by %d",
			e.Axis, e.Value, e.Min, e.Max, e.Multiple)
	}
	return fmt.Sprintf("invalid %s %d: should be in range [%d ... %d]", e.Axis, e.Value, e.Min, e.Max)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }

// RangeError describes a coordinate outside [0 ... Max].
type RangeError struct {
	Axis  string
	Value int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid %s %d: should be in range [0 ... %d]", e.Axis, e.Value, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CheckDimension validates one canvas axis against [MinSize, MaxSize].
func CheckDimension(axis string, value int) error {
	if value < MinSize || value > MaxSize {
		return &DimensionError{Axis: axis, Value: value, Min: MinSize, Max: MaxSize}
	}
	return nil
}

// CheckIndex validates a coordinate against the half-open range [0, size).
func CheckIndex(axis string, value, size int) error {
	if value < 0 || value >= size {
		return &RangeError{Axis: axis, Value: value, Max: size - 1}
	}
	return nil
}
