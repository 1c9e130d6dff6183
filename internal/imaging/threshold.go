package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/sdf-tools-mcp/internal/sdf"
)

// ThresholdOptions controls how an image is classified into inside and
// outside pixels.
type ThresholdOptions struct {
	// Threshold is the luminance cutoff. Pixels strictly brighter than it
	// are inside the shape.
	Threshold uint8

	// Invert swaps light and dark before thresholding, so dark shapes on a
	// light background come out as inside.
	Invert bool

	// BlurRadius applies a Gaussian blur of this radius before
	// thresholding to smooth out noise and JPEG artifacts. Zero disables it.
	BlurRadius float64
}

// Threshold classifies img into a binary grid.
//
// The image is optionally blurred and inverted, converted to luminance with
// the ITU-R BT.601 weights used by disintegration/imaging, and each pixel is
// compared against opts.Threshold.
//
// Returns an error only for an empty image.
func Threshold(img image.Image, opts ThresholdOptions) (*sdf.BinaryGrid, error) {
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}
	if opts.Invert {
		img = effect.Invert(img)
	}

	gray := imaging.Grayscale(img)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()

	lum := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < w; x++ {
			// Grayscale writes the same value into R, G and B.
			lum[y*w+x] = row[x*4]
		}
	}

	return sdf.FromBytes(w, h, lum, opts.Threshold)
}
