package sdf

import "math"

// Vector is an offset in pixel units from a pixel to its nearest known
// boundary point.
type Vector struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float32 {
	return float32(math.Sqrt(float64(v.lenSq())))
}

func (v Vector) lenSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// VectorField holds, for every pixel, the offset to the nearest boundary
// point found by the transform. The vector at (x, y) points at
// (x+X, y+Y).
//
// A VectorField returned by DistanceField.Vectors is a read-only view; it
// has no exported mutators.
type VectorField struct {
	width    int
	height   int
	vectors  []Vector
	sentinel Vector
}

// newVectorField wraps buf (allocating when nil) and fills it with the
// sentinel. len(buf) must already have been validated.
func newVectorField(width, height int, buf []Vector) *VectorField {
	if buf == nil {
		buf = make([]Vector, width*height)
	}
	// Any reachable boundary point lies within the grid, so no true offset
	// can be as long as (W+H, W+H).
	far := float32(width + height)
	vf := &VectorField{
		width:    width,
		height:   height,
		vectors:  buf,
		sentinel: Vector{X: far, Y: far},
	}
	for i := range vf.vectors {
		vf.vectors[i] = vf.sentinel
	}
	return vf
}

// Width returns the number of columns.
func (vf *VectorField) Width() int { return vf.width }

// Height returns the number of rows.
func (vf *VectorField) Height() int { return vf.height }

// At returns the offset stored for (x, y).
func (vf *VectorField) At(x, y int) Vector {
	return vf.vectors[y*vf.width+x]
}

// Known reports whether any boundary information reached (x, y). It is false
// everywhere for a grid without a boundary.
func (vf *VectorField) Known(x, y int) bool {
	return vf.vectors[y*vf.width+x] != vf.sentinel
}

// Magnitude returns the unsigned distance from (x, y) to its nearest
// boundary point.
func (vf *VectorField) Magnitude(x, y int) float32 {
	return vf.At(x, y).Len()
}

// Target returns the absolute coordinates of the nearest boundary point
// of (x, y).
func (vf *VectorField) Target(x, y int) (tx, ty float32) {
	v := vf.At(x, y)
	return float32(x) + v.X, float32(y) + v.Y
}

// Sentinel returns the placeholder stored for pixels without a boundary
// estimate.
func (vf *VectorField) Sentinel() Vector { return vf.sentinel }
