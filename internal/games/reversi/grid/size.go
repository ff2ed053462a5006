// Package grid provides a fixed-size 2D cell container and directional ray
// scanning over it. It has no game semantics and no external dependencies.
package grid

import (
	"errors"
	"fmt"
)

// Axis names one of the two grid dimensions.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ErrZeroSize is matched by every SizeError.
var ErrZeroSize = errors.New("grid: zero size")

// SizeError reports which dimension of a requested size was not positive.
type SizeError struct {
	Axis  Axis
	Value int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("grid: %s dimension must be positive, got %d", e.Axis, e.Value)
}

// Is makes errors.Is(err, ErrZeroSize) true for any SizeError.
func (e *SizeError) Is(target error) bool {
	return target == ErrZeroSize
}

// Size holds grid dimensions. Both are strictly positive when built by NewSize.
type Size struct {
	W int
	H int
}

// NewSize validates and returns a Size.
func NewSize(w, h int) (Size, error) {
	if w <= 0 {
		return Size{}, &SizeError{Axis: AxisX, Value: w}
	}
	if h <= 0 {
		return Size{}, &SizeError{Axis: AxisY, Value: h}
	}
	return Size{W: w, H: h}, nil
}

// MustSize is NewSize for constant dimensions; it panics on invalid input.
func MustSize(w, h int) Size {
	s, err := NewSize(w, h)
	if err != nil {
		panic(err)
	}
	return s
}

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int {
	return s.W * s.H
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}
