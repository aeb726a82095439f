// Package raster provides the pixel-level building blocks of the
// segmentation engine: image loading, color-space conversion, binary
// masks, morphological cleanup, and edge/texture response maps.
//
// All operations are pure functions of their inputs. Every function
// allocates fresh output buffers, so buffers from one invocation are
// never shared with another concurrent invocation.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner:
// X increases rightward, Y increases downward. Derived planes (HSV,
// grayscale, masks) are always addressed relative to (0,0) regardless
// of the source image's Bounds().Min.
//
// # HSV Scale
//
// HSV planes use 8-bit components on the scale the detector band tables
// assume: Hue 0-180 (degrees halved), Saturation and Value 0-255. A
// color is inside a band when every component lies inclusively between
// the band's low and high values.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. Everything else is
// stateless; concurrent calls on shared read-only inputs are safe.
package raster
