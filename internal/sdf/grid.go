package sdf

import "fmt"

// DefaultThreshold is the luminance a byte must exceed to count as inside
// when building a grid with FromBytes.
const DefaultThreshold uint8 = 127

// Binary is a read-only width×height classification of pixels into inside
// (true) and outside (false).
//
// Implementations must return the same answer for the same coordinates for
// the duration of a computation. Coordinates passed to Inside are always
// within 0 <= x < Width() and 0 <= y < Height().
type Binary interface {
	Width() int
	Height() int
	Inside(x, y int) bool
}

// BinaryGrid is an immutable, row-major Binary backed by a bool slice.
type BinaryGrid struct {
	width  int
	height int
	cells  []bool
}

// NewBinaryGrid builds a grid from row-major cells. The cells are copied, so
// later changes to the slice do not affect the grid.
//
// Returns ErrEmptyGrid if width or height is not positive or if len(cells)
// is not width*height.
func NewBinaryGrid(width, height int, cells []bool) (*BinaryGrid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrEmptyGrid, len(cells), width, height)
	}
	g := &BinaryGrid{width: width, height: height, cells: make([]bool, len(cells))}
	copy(g.cells, cells)
	return g, nil
}

// FromBytes thresholds a row-major, one-byte-per-pixel luminance buffer.
// A pixel is inside when its byte is strictly brighter than threshold.
// Use DefaultThreshold for the conventional mid-gray cutoff.
func FromBytes(width, height int, pix []byte, threshold uint8) (*BinaryGrid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for a %dx%d grid", ErrDimensionMismatch, len(pix), width, height)
	}
	g := &BinaryGrid{width: width, height: height, cells: make([]bool, len(pix))}
	for i, p := range pix {
		g.cells[i] = p > threshold
	}
	return g, nil
}

// FromFunc builds a grid by evaluating inside for every pixel in row-major
// order.
func FromFunc(width, height int, inside func(x, y int) bool) (*BinaryGrid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	g := &BinaryGrid{width: width, height: height, cells: make([]bool, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = inside(x, y)
		}
	}
	return g, nil
}

// Copy snapshots any Binary into a BinaryGrid.
func Copy(b Binary) (*BinaryGrid, error) {
	return FromFunc(b.Width(), b.Height(), b.Inside)
}

// Width returns the number of columns.
func (g *BinaryGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *BinaryGrid) Height() int { return g.height }

// Inside reports whether the pixel at (x, y) belongs to the shape.
func (g *BinaryGrid) Inside(x, y int) bool {
	return g.cells[y*g.width+x]
}

// Negate returns the logical complement of the grid.
func (g *BinaryGrid) Negate() *BinaryGrid {
	n := &BinaryGrid{width: g.width, height: g.height, cells: make([]bool, len(g.cells))}
	for i, c := range g.cells {
		n.cells[i] = !c
	}
	return n
}

// Count returns the number of inside pixels.
func (g *BinaryGrid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	return nil
}
