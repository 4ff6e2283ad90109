package raster

// Rectangle paints the closed boundary of the rectangle spanning rows
// [startRow, endRow] and columns [startCol, endCol]. The horizontal edges
// own the corners; the vertical edges fill the rows in between. Reversed
// corners are normalized.
func Rectangle[C any](t Target[C], startRow, startCol, endRow, endCol int, c C) error {
	swapIf(&startRow, &endRow, startRow > endRow)
	swapIf(&startCol, &endCol, startCol > endCol)

	if err := check(t, startRow, startCol); err != nil {
		return err
	}
	if err := check(t, endRow, endCol); err != nil {
		return err
	}

	if err := HorizontalLine(t, startRow, startCol, endCol+1, c); err != nil {
		return err
	}
	if err := HorizontalLine(t, endRow, startCol, endCol+1, c); err != nil {
		return err
	}
	if err := VerticalLine(t, startCol, startRow+1, endRow, c); err != nil {
		return err
	}
	return VerticalLine(t, endCol, startRow+1, endRow, c)
}

// Triangle paints a triangle whose base runs along startRow from startCol
// to endCol and whose apex sits at endRow, centered between them.
func Triangle[C any](t Target[C], startRow, startCol, endRow, endCol int, c C) error {
	apexCol := (startCol + endCol) / 2

	if err := check(t, startRow, startCol); err != nil {
		return err
	}
	if err := check(t, startRow, endCol); err != nil {
		return err
	}
	if err := check(t, endRow, apexCol); err != nil {
		return err
	}

	if err := Line(t, startCol, startRow, endCol, startRow, c); err != nil {
		return err
	}
	if err := Line(t, startCol, startRow, apexCol, endRow, c); err != nil {
		return err
	}
	return Line(t, endCol, startRow, apexCol, endRow, c)
}
