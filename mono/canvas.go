// Package mono implements a 1-bit canvas. Pixels are packed 32 to a
// uint32 word, so the canvas width must be a multiple of WordBits.
package mono

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"math/bits"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/canvas"
	"github.com/32bitkid/canvas/pixels"
	"github.com/32bitkid/canvas/raster"
)

// Canvas is a monochrome drawing surface. Rows are addressed from the top,
// columns from the left.
type Canvas struct {
	pix *pixels.Raster[Color, uint32]
}

var (
	_ raster.Target[Color] = (*Canvas)(nil)
	_ image.PalettedImage  = (*Canvas)(nil)
)

// New creates a white canvas. Both dimensions must lie in
// [canvas.MinSize, canvas.MaxSize] and width must be a multiple of
// WordBits; otherwise the error wraps canvas.ErrInvalidDimension.
func New(width, height int) (*Canvas, error) {
	pix, err := pixels.New[Color, uint32](codec{}, width, height)
	if err != nil {
		return nil, err
	}
	c := &Canvas{pix: pix}
	c.FillAll(White)
	return c, nil
}

func (c *Canvas) Width() int  { return c.pix.Width() }
func (c *Canvas) Height() int { return c.pix.Height() }

// FillAll sets every pixel to color.
func (c *Canvas) FillAll(color Color) {
	c.pix.Fill(color)
}

// InvertAll flips every pixel.
func (c *Canvas) InvertAll() {
	c.pix.Invert()
}

// GetPixel returns the pixel at (row, col). The row is checked against the
// height first, then the column against the width.
func (c *Canvas) GetPixel(row, col int) (Color, error) {
	return c.pix.At(row, col)
}

// SetPixel writes the pixel at (row, col).
func (c *Canvas) SetPixel(row, col int, color Color) error {
	return c.pix.Set(row, col, color)
}

// DrawHorizontalLine paints columns [startCol, endCol) of row.
func (c *Canvas) DrawHorizontalLine(row, startCol, endCol int, color Color) error {
	return raster.HorizontalLine[Color](c, row, startCol, endCol, color)
}

// DrawVerticalLine paints rows [startRow, endRow) of col.
func (c *Canvas) DrawVerticalLine(col, startRow, endRow int, color Color) error {
	return raster.VerticalLine[Color](c, col, startRow, endRow, color)
}

// DrawDiagonalLine paints a line between two points, both included.
func (c *Canvas) DrawDiagonalLine(startCol, startRow, endCol, endRow int, color Color) error {
	return raster.Line[Color](c, startCol, startRow, endCol, endRow, color)
}

// DrawRectangle paints the boundary of the rectangle with corners
// (startRow, startCol) and (endRow, endCol).
func (c *Canvas) DrawRectangle(startRow, startCol, endRow, endCol int, color Color) error {
	return raster.Rectangle[Color](c, startRow, startCol, endRow, endCol, color)
}

// DrawTriangle paints a triangle with its base along startRow between
// startCol and endCol, and its apex at endRow.
func (c *Canvas) DrawTriangle(startRow, startCol, endRow, endCol int, color Color) error {
	return raster.Triangle[Color](c, startRow, startCol, endRow, endCol, color)
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{pix: c.pix.Clone()}
}

// Equal reports whether both canvases have identical size and pixels.
func (c *Canvas) Equal(o *Canvas) bool {
	return c.pix.Equal(o.pix)
}

// Count returns the number of pixels of the given color.
func (c *Canvas) Count(color Color) int {
	white := 0
	for row := 0; row < c.Height(); row++ {
		for _, w := range c.pix.Row(row) {
			white += bits.OnesCount32(w)
		}
	}
	if color&1 == White {
		return white
	}
	return c.Width()*c.Height() - white
}

// Scanline decodes one row, leftmost pixel first.
func (c *Canvas) Scanline(row int) ([]Color, error) {
	if err := canvas.CheckIndex(canvas.AxisRow, row, c.Height()); err != nil {
		return nil, err
	}

	// bitreader consumes the most significant bit first, so each word is
	// bit-reversed to put column 0 at the front of the stream. The trailing
	// padding keeps its 64-bit prefetch away from EOF.
	words := c.pix.Row(row)
	buf := make([]byte, 4*len(words)+8)
	for i, w := range words {
		binary.BigEndian.PutUint32(buf[i*4:], bits.Reverse32(w))
	}

	var br bitreader.BitReader8 = bitreader.NewReader(bytes.NewReader(buf))
	line := make([]Color, c.Width())
	for col := range line {
		set, err := br.Read1()
		if err != nil {
			return nil, err
		}
		if set {
			line[col] = White
		}
	}
	return line, nil
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return Palette }

// Bounds implements image.Image; X is the column and Y the row.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// At implements image.Image. Points outside the canvas are black.
func (c *Canvas) At(x, y int) color.Color {
	return Palette[c.ColorIndexAt(x, y)]
}

// ColorIndexAt implements image.PalettedImage.
func (c *Canvas) ColorIndexAt(x, y int) uint8 {
	v, err := c.pix.At(y, x)
	if err != nil {
		return uint8(Black)
	}
	return uint8(v)
}
