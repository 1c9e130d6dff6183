package sdf

import (
	"fmt"

	"github.com/x448/float16"
)

// DistanceField is the signed distance transform of a Binary, stored as T
// under the precision policy P.
//
// Values are negative inside the shape and positive outside. Pixels on the
// boundary have a magnitude below one pixel.
type DistanceField[T any, P Precision[T]] struct {
	width    int
	height   int
	values   []T
	vectors  *VectorField
	boundary int
}

// F32Field is a DistanceField with full float32 storage.
type F32Field = DistanceField[float32, Full]

// F16Field is a DistanceField with binary16 storage.
type F16Field = DistanceField[float16.Float16, Half]

// Compute approximates the signed distance field of b, allocating all
// storage.
func Compute[T any, P Precision[T]](b Binary) (*DistanceField[T, P], error) {
	return ComputeInto[T, P](b, nil, nil)
}

// ComputeF32 computes a field with Full precision.
func ComputeF32(b Binary) (*F32Field, error) {
	return Compute[float32, Full](b)
}

// ComputeF16 computes a field with Half precision.
func ComputeF16(b Binary) (*F16Field, error) {
	return Compute[float16.Float16, Half](b)
}

// ComputeInto approximates the signed distance field of b using the
// supplied buffers as backing storage.
//
// Parameters:
//   - b: The classification to transform. Width and height must be positive.
//   - distances: Destination for the signed distances, or nil to allocate.
//   - vectors: Destination for the nearest-boundary vectors, or nil to
//     allocate.
//
// Returns:
//   - *DistanceField: The field. Its Values and Vectors alias the supplied
//     buffers.
//   - error: ErrEmptyGrid for a degenerate b, ErrDimensionMismatch when a
//     non-nil buffer does not hold exactly width*height elements. Neither
//     buffer is written when an error is returned.
//
// # Algorithm
//
//  1. Seed: boundary pixels get a half-pixel vector toward the crossing,
//     all others the sentinel.
//  2. Forward pass: top-to-bottom, left-to-right, relaxing from W, NW, N, NE.
//  3. Backward pass: bottom-to-top, right-to-left, relaxing from E, SE, S, SW.
//  4. Sign: magnitude is negated for inside pixels, then stored through P.
func ComputeInto[T any, P Precision[T]](b Binary, distances []T, vectors []Vector) (*DistanceField[T, P], error) {
	w, h := b.Width(), b.Height()
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	n := w * h
	if distances != nil && len(distances) != n {
		return nil, fmt.Errorf("%w: distance buffer holds %d values, want %d", ErrDimensionMismatch, len(distances), n)
	}
	if vectors != nil && len(vectors) != n {
		return nil, fmt.Errorf("%w: vector buffer holds %d values, want %d", ErrDimensionMismatch, len(vectors), n)
	}
	if distances == nil {
		distances = make([]T, n)
	}

	vf := newVectorField(w, h, vectors)
	boundary := seedEdges(b, vf)
	propagate(vf)

	var p P
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			distances[i] = p.Encode(signOf(b.Inside(x, y)) * vf.vectors[i].Len())
		}
	}

	return &DistanceField[T, P]{
		width:    w,
		height:   h,
		values:   distances,
		vectors:  vf,
		boundary: boundary,
	}, nil
}

// signOf maps a classification to the sign of its distance: outside is
// positive, inside is negative.
func signOf(inside bool) float32 {
	if inside {
		return -1
	}
	return 1
}

// Width returns the number of columns.
func (f *DistanceField[T, P]) Width() int { return f.width }

// Height returns the number of rows.
func (f *DistanceField[T, P]) Height() int { return f.height }

// At returns the signed distance at (x, y).
func (f *DistanceField[T, P]) At(x, y int) float32 {
	var p P
	return p.Decode(f.values[y*f.width+x])
}

// Values returns the stored distances in row-major order. The slice is the
// field's backing storage.
func (f *DistanceField[T, P]) Values() []T { return f.values }

// Vectors returns the nearest-boundary vector field computed alongside the
// distances.
func (f *DistanceField[T, P]) Vectors() *VectorField { return f.vectors }

// Target returns the nearest boundary point of (x, y) in absolute pixel
// coordinates.
func (f *DistanceField[T, P]) Target(x, y int) (tx, ty float32) {
	return f.vectors.Target(x, y)
}

// Known reports whether any boundary point reached (x, y). When it is false,
// Target returns the sentinel offset rather than a boundary point.
func (f *DistanceField[T, P]) Known(x, y int) bool {
	return f.vectors.Known(x, y)
}

// BoundaryPixels returns how many pixels were seeded as boundary pixels.
// Zero means the input had a single classification everywhere.
func (f *DistanceField[T, P]) BoundaryPixels() int { return f.boundary }

// Range returns the smallest and largest signed distance in the field.
func (f *DistanceField[T, P]) Range() (lo, hi float32) {
	var p P
	lo = p.Decode(f.values[0])
	hi = lo
	for _, v := range f.values[1:] {
		d := p.Decode(v)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
