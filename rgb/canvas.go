// Package rgb implements a 24-bit color canvas. Each row stores its pixels
// as consecutive red, green and blue bytes.
package rgb

import (
	"image"
	"image/color"

	"github.com/32bitkid/canvas/pixels"
	"github.com/32bitkid/canvas/raster"
)

// Canvas is a color drawing surface. Rows are addressed from the top,
// columns from the left. Coordinates are always pixel columns, never byte
// offsets.
type Canvas struct {
	pix *pixels.Raster[Color, uint8]
}

var (
	_ raster.Target[Color] = (*Canvas)(nil)
	_ image.Image          = (*Canvas)(nil)
)

// New creates a white canvas. Both dimensions must lie in
// [canvas.MinSize, canvas.MaxSize]; otherwise the error wraps
// canvas.ErrInvalidDimension.
func New(width, height int) (*Canvas, error) {
	pix, err := pixels.New[Color, uint8](codec{}, width, height)
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

// InvertAll complements every channel of every pixel.
func (c *Canvas) InvertAll() {
	c.pix.Invert()
}

// GetPixel returns the pixel at (row, col).
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

// DrawDiagonalLine paints the Bresenham line between (startRow, startCol)
// and (endRow, endCol). Unlike the axis lines, both endpoints are painted.
func (c *Canvas) DrawDiagonalLine(startCol, startRow, endCol, endRow int, color Color) error {
	return raster.Line[Color](c, startCol, startRow, endCol, endRow, color)
}

// DrawRectangle paints the boundary of the rectangle with corners
// (startRow, startCol) and (endRow, endCol), all four corners included.
func (c *Canvas) DrawRectangle(startRow, startCol, endRow, endCol int, color Color) error {
	return raster.Rectangle[Color](c, startRow, startCol, endRow, endCol, color)
}

// DrawTriangle paints the triangle with vertices (startRow, startCol),
// (startRow, endCol) and (endRow, (startCol+endCol)/2).
func (c *Canvas) DrawTriangle(startRow, startCol, endRow, endCol int, color Color) error {
	return raster.Triangle[Color](c, startRow, startCol, endRow, endCol, color)
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{pix: c.pix.Clone()}
}

func (c *Canvas) Equal(o *Canvas) bool {
	return c.pix.Equal(o.pix)
}

func (c *Canvas) ColorModel() color.Model { return Model }

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width(), c.Height())
}

// At implements image.Image with X as the column and Y as the row. Points
// outside the canvas are black.
func (c *Canvas) At(x, y int) color.Color {
	v, err := c.pix.At(y, x)
	if err != nil {
		return Black
	}
	return v
}
