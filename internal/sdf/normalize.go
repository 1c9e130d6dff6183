package sdf

import (
	"fmt"
	"math"
)

// NormalizedField holds distances remapped into [0, 1], row-major.
type NormalizedField struct {
	width  int
	height int
	values []float32
}

// Width returns the number of columns.
func (nf *NormalizedField) Width() int { return nf.width }

// Height returns the number of rows.
func (nf *NormalizedField) Height() int { return nf.height }

// At returns the normalized value at (x, y).
func (nf *NormalizedField) At(x, y int) float32 {
	return nf.values[y*nf.width+x]
}

// Values returns the normalized values. The slice is the field's backing
// storage.
func (nf *NormalizedField) Values() []float32 { return nf.values }

// Gray8 quantizes the field to one byte per pixel, mapping 0 to 0 and 1 to
// 255 with rounding. dst may be nil or must hold exactly width*height bytes.
func (nf *NormalizedField) Gray8(dst []uint8) ([]uint8, error) {
	dst, err := prepare(dst, nf.width, nf.height)
	if err != nil {
		return nil, err
	}
	for i, v := range nf.values {
		dst[i] = uint8(math.Round(float64(clamp01(v)) * 255))
	}
	return dst, nil
}

// Normalize maps the field's true minimum to 0 and true maximum to 1,
// linearly in between. A constant field, such as the result of a grid
// without any boundary, maps to 0.5 everywhere.
//
// dst may be nil or must hold exactly width*height values; on
// ErrDimensionMismatch it is left untouched.
func (f *DistanceField[T, P]) Normalize(dst []float32) (*NormalizedField, error) {
	dst, err := prepare(dst, f.width, f.height)
	if err != nil {
		return nil, err
	}

	lo, hi := f.Range()
	var p P
	if lo == hi {
		for i := range dst {
			dst[i] = 0.5
		}
	} else {
		span := float64(hi) - float64(lo)
		for i, v := range f.values {
			// d == hi divides span by itself, which is exactly 1.
			dst[i] = float32((float64(p.Decode(v)) - float64(lo)) / span)
		}
	}

	return &NormalizedField{width: f.width, height: f.height, values: dst}, nil
}

// NormalizeClamped maps distances in [low, high] linearly onto [0, 1].
// Distances at or below low become 0 and distances at or above high become
// 1; (low+high)/2 becomes 0.5. The field's own range is not scanned.
//
// Returns ErrInvalidRange when low >= high (or either bound is NaN) and
// ErrDimensionMismatch for a wrongly sized dst. No output is produced in
// either case.
func (f *DistanceField[T, P]) NormalizeClamped(low, high float64, dst []float32) (*NormalizedField, error) {
	if !(low < high) {
		return nil, fmt.Errorf("%w: low %g must be below high %g", ErrInvalidRange, low, high)
	}
	dst, err := prepare(dst, f.width, f.height)
	if err != nil {
		return nil, err
	}

	var p P
	span := high - low
	for i, v := range f.values {
		d := float64(p.Decode(v))
		switch {
		case d <= low:
			dst[i] = 0
		case d >= high:
			dst[i] = 1
		default:
			dst[i] = float32((d - low) / span)
		}
	}

	return &NormalizedField{width: f.width, height: f.height, values: dst}, nil
}

// prepare validates or allocates a grid-sized destination.
func prepare[E any](dst []E, width, height int) ([]E, error) {
	n := width * height
	if dst == nil {
		return make([]E, n), nil
	}
	if len(dst) != n {
		return nil, fmt.Errorf("%w: buffer holds %d values, want %d", ErrDimensionMismatch, len(dst), n)
	}
	return dst, nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
