package sdf

import "github.com/x448/float16"

// Precision is the storage policy of a DistanceField. Encode rounds a
// working float32 distance into the stored type T; Decode widens it back.
//
// Policies are zero-size types used only as type arguments, so the choice
// is fixed when the field type is instantiated.
type Precision[T any] interface {
	Encode(d float32) T
	Decode(v T) float32
}

// Full stores distances as float32 without rounding.
type Full struct{}

// Encode returns d unchanged.
func (Full) Encode(d float32) float32 { return d }

// Decode returns v unchanged.
func (Full) Decode(v float32) float32 { return v }

// Half stores distances as IEEE 754 binary16. It halves memory at the cost
// of about three significant decimal digits; magnitudes above 65504 are
// clamped to ±65504 so stored fields stay finite.
type Half struct{}

// maxHalf is the largest finite binary16 value.
const maxHalf = 65504

// Encode rounds d to the nearest binary16 value, saturating at ±maxHalf.
func (Half) Encode(d float32) float16.Float16 {
	switch {
	case d > maxHalf:
		d = maxHalf
	case d < -maxHalf:
		d = -maxHalf
	}
	return float16.Fromfloat32(d)
}

// Decode widens v to float32 exactly.
func (Half) Decode(v float16.Float16) float32 { return v.Float32() }
