package sdf

// crossing is the offset from a pixel center to the point where the
// classification step, linearly interpolated between two adjacent pixel
// centers, passes 0.5.
const crossing = 0.5

// seedEdges writes a sub-pixel seed into every boundary pixel of vf and
// returns how many pixels were seeded. Non-boundary pixels keep the
// sentinel written by newVectorField.
//
// A pixel is on the boundary when one of its in-grid 4-neighbors has the
// opposite classification. Each axis is estimated on its own, and the
// shorter axis estimate becomes the seed, x winning ties.
func seedEdges(b Binary, vf *VectorField) int {
	w, h := vf.width, vf.height
	seeded := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			in := b.Inside(x, y)

			var dx, dy float32
			hasX, hasY := false, false
			switch {
			case x > 0 && b.Inside(x-1, y) != in:
				dx, hasX = -crossing, true
			case x < w-1 && b.Inside(x+1, y) != in:
				dx, hasX = crossing, true
			}
			switch {
			case y > 0 && b.Inside(x, y-1) != in:
				dy, hasY = -crossing, true
			case y < h-1 && b.Inside(x, y+1) != in:
				dy, hasY = crossing, true
			}

			i := y*w + x
			switch {
			case hasX && (!hasY || abs32(dx) <= abs32(dy)):
				vf.vectors[i] = Vector{X: dx}
			case hasY:
				vf.vectors[i] = Vector{Y: dy}
			default:
				continue
			}
			seeded++
		}
	}
	return seeded
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
