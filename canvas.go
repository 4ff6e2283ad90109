// Package canvas implements in-memory raster canvases with pixel access
// and primitive shape rendering.
//
// Two pixel formats are provided by sub-packages: mono packs 1-bit pixels
// into 32-bit words, and rgb stores 24-bit pixels as three bytes each.
// Both share the packed storage of the pixels package and the line and
// shape rasterizer of the raster package.
//
// A canvas is a plain mutable value. None of the types in this module
// lock internally, so a canvas shared between goroutines must be guarded
// by the caller. Clone produces an independent copy.
package canvas

// Canvas dimensions are limited to [MinSize, MaxSize] on both axes.
const (
	MinSize = 32
	MaxSize = 1024
)
