// Package sdf approximates signed distance fields of binary images.
//
// The transform is the "dead reckoning" algorithm described in
// "The 'dead reckoning' signed distance transform" by George J. Grevera
// (2004). It runs in time linear in the number of pixels: boundary pixels
// are seeded with sub-pixel offsets, then two raster passes propagate the
// nearest known boundary point from pixel to pixel.
//
// # Coordinate System
//
// Grids are row-major with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward, the same convention as package
// imaging.
//
// # Sign Convention
//
// Pixels outside the shape have positive distances and pixels inside the
// shape have negative distances. A pixel is "inside" when its Binary
// classification is true.
//
// # Precision
//
// Distances are stored through a Precision policy chosen at compile time:
//
//	full, _ := sdf.Compute[float32, sdf.Full](grid)           // 4 bytes per pixel
//	half, _ := sdf.Compute[float16.Float16, sdf.Half](grid)   // 2 bytes per pixel
//
// ComputeF32 and ComputeF16 are shorthands for the two policies. The policy
// only affects how values are rounded when stored, never the propagation.
//
// # Buffers
//
// Every function that produces a grid-sized slice accepts an optional
// destination. A nil destination is allocated; a non-nil destination must
// hold exactly width*height elements or ErrDimensionMismatch is returned
// before anything is written. The returned value uses the supplied slice as
// its backing storage.
//
// # Thread Safety
//
// The package holds no global state. A computation is strictly sequential,
// but independent grids can be processed from different goroutines.
package sdf
