package mono

import (
	"github.com/32bitkid/canvas"
)

// WordBits is the number of pixels packed into one storage word.
const WordBits = 32

// codec packs one pixel per bit, column 0 of each word in bit 0.
type codec struct{}

func (codec) Name() string { return "mono1" }

func (codec) CheckWidth(width int) error {
	if width%WordBits != 0 {
		return &canvas.DimensionError{
			Axis:     canvas.AxisWidth,
			Value:    width,
			Min:      canvas.MinSize,
			Max:      canvas.MaxSize,
			Multiple: WordBits,
		}
	}
	return nil
}

func (codec) RowWords(width int) int { return width / WordBits }

// Locate maps a column to its word within the row and its bit in that word.
func (codec) Locate(col int) (int, uint) {
	return col / WordBits, uint(col % WordBits)
}

func (c codec) Get(row []uint32, col int) Color {
	word, bit := c.Locate(col)
	return Color((row[word] >> bit) & 1)
}

func (c codec) Set(row []uint32, col int, v Color) {
	word, bit := c.Locate(col)
	row[word] = row[word]&^(1<<bit) | uint32(v&1)<<bit
}
