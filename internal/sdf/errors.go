package sdf

import "errors"

// Sentinel errors returned by the package. Callers match them with errors.Is;
// the returned errors wrap them with the offending sizes or bounds.
var (
	// ErrDimensionMismatch is returned when a destination buffer does not
	// hold exactly width*height elements.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidRange is returned by NormalizeClamped when low >= high.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmptyGrid is returned when a grid would have no pixels.
	ErrEmptyGrid = errors.New("empty grid")
)
