package mono

import "image/color"

// Color is the value of a single monochrome pixel.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Palette maps a Color to its image/color equivalent, indexed by Color.
var Palette = color.Palette{
	Black: color.Gray{Y: 0x00},
	White: color.Gray{Y: 0xFF},
}

func (c Color) String() string {
	if c&1 == White {
		return "White"
	}
	return "Black"
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return Palette[c&1].RGBA()
}

// Invert returns the opposite color.
func (c Color) Invert() Color {
	return (c ^ 1) & 1
}
