package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/sdf-tools-mcp/internal/sdf"
)

// RenderResult contains a rendered field encoded as base64 PNG.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ToGray renders a normalized field as an 8-bit grayscale image, 0 black and
// 1 white. The quantized bytes are written straight into the image's pixel
// buffer.
func ToGray(nf *sdf.NormalizedField) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, nf.Width(), nf.Height()))
	if _, err := nf.Gray8(img.Pix); err != nil {
		return nil, err
	}
	return img, nil
}

// Colorize renders a normalized field through p.
func Colorize(nf *sdf.NormalizedField, p Palette) *image.RGBA {
	w, h := nf.Width(), nf.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := p.At(nf.At(x, y))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// Encode serializes img as base64 PNG.
func Encode(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &RenderResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path. The format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
