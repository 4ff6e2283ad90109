package rgb

// BytesPerPixel is the number of bytes each pixel occupies in a row.
const BytesPerPixel = 3

// codec stores red, green and blue in three consecutive bytes.
type codec struct{}

func (codec) Name() string               { return "rgb24" }
func (codec) CheckWidth(int) error       { return nil }
func (codec) RowWords(width int) int     { return width * BytesPerPixel }
func (codec) Locate(col int) (int, uint) { return col * BytesPerPixel, 0 }

func (c codec) Get(row []uint8, col int) Color {
	i, _ := c.Locate(col)
	return Color{row[i], row[i+1], row[i+2]}
}

func (c codec) Set(row []uint8, col int, v Color) {
	i, _ := c.Locate(col)
	row[i], row[i+1], row[i+2] = v.R, v.G, v.B
}
