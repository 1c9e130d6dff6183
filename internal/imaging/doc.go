// Package imaging converts between image files and the plain grids of
// package sdf.
//
// It is the only place where image types appear: files are decoded into
// image.Image values, thresholded into sdf.BinaryGrid values, and
// normalized distance fields are rendered back into grayscale or colorized
// images for encoding. Package sdf never imports it.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Supported Formats
//
// Decoding handles PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. JPEG EXIF orientation is applied on
// load. Rendered fields are always encoded as PNG.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other function is
// stateless and can be called concurrently on different images.
package imaging
