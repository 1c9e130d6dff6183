package sdf

// offset is the position of a mask neighbor relative to the visited pixel.
type offset struct{ dx, dy int }

// Relaxation masks. Each holds only neighbors that the pass has already
// visited, so a pixel sees values written earlier in the same pass.
var (
	forwardMask  = [4]offset{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}} // W, NW, N, NE
	backwardMask = [4]offset{{1, 0}, {1, 1}, {0, 1}, {-1, 1}}     // E, SE, S, SW
)

// propagate runs the forward pass followed by the backward pass over vf.
// Each pass must visit pixels in strict raster order.
func propagate(vf *VectorField) {
	w, h := vf.width, vf.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			vf.relax(x, y, &forwardMask)
		}
	}
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			vf.relax(x, y, &backwardMask)
		}
	}
}

// relax replaces the vector at (x, y) with the shortest candidate offered
// by the mask neighbors. A neighbor n offers its boundary point n+v(n),
// which seen from p is v(n)+(n-p). Vectors only ever get shorter.
func (vf *VectorField) relax(x, y int, mask *[4]offset) {
	i := y*vf.width + x
	best := vf.vectors[i]
	bestSq := best.lenSq()
	changed := false

	for _, o := range mask {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || ny < 0 || nx >= vf.width || ny >= vf.height {
			continue
		}
		n := vf.vectors[ny*vf.width+nx]
		if n == vf.sentinel {
			continue
		}
		c := Vector{X: n.X + float32(o.dx), Y: n.Y + float32(o.dy)}
		if sq := c.lenSq(); sq < bestSq {
			best, bestSq, changed = c, sq, true
		}
	}

	if changed {
		vf.vectors[i] = best
	}
}
