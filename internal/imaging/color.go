package imaging

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the three anchor colors of a colorized distance field.
//
// Normalized values blend from Inside at 0 to Edge at 0.5 and from Edge to
// Outside at 1. Blending happens in CIE L*a*b* space so the ramp is
// perceptually even.
type Palette struct {
	Inside  colorful.Color
	Edge    colorful.Color
	Outside colorful.Color
}

// ParsePalette builds a palette from "#RRGGBB" strings.
func ParsePalette(inside, edge, outside string) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"inside", inside, &p.Inside},
		{"edge", edge, &p.Edge},
		{"outside", outside, &p.Outside},
	} {
		col, err := colorful.Hex(c.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("invalid %s color %q: %w", c.name, c.hex, err)
		}
		*c.dst = col
	}
	return p, nil
}

// At returns the RGB bytes for a normalized value. Values outside [0, 1]
// are clamped.
func (p Palette) At(v float32) (r, g, b uint8) {
	var c colorful.Color
	switch {
	case v <= 0:
		c = p.Inside
	case v >= 1:
		c = p.Outside
	case v < 0.5:
		c = p.Inside.BlendLab(p.Edge, float64(v)*2)
	default:
		c = p.Edge.BlendLab(p.Outside, float64(v)*2-1)
	}
	return c.Clamped().RGB255()
}
