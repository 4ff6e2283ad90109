// Package raster draws lines and simple shapes onto any pixel target.
//
// Axis-aligned lines cover half-open spans, [start, end). Diagonal lines
// connect two points and paint both endpoints. Every drawing function
// validates all pixels it would touch before writing the first one, so a
// failed call leaves the target unchanged.
package raster

import (
	"image"

	"github.com/32bitkid/canvas"
)

// Target is a pixel surface addressed by (row, col).
type Target[C any] interface {
	Width() int
	Height() int
	SetPixel(row, col int, c C) error
}

func check[C any](t Target[C], row, col int) error {
	if err := canvas.CheckIndex(canvas.AxisRow, row, t.Height()); err != nil {
		return err
	}
	return canvas.CheckIndex(canvas.AxisCol, col, t.Width())
}

// HorizontalLine paints columns [startCol, endCol) of row. An empty span
// draws nothing.
func HorizontalLine[C any](t Target[C], row, startCol, endCol int, c C) error {
	if startCol >= endCol {
		return nil
	}
	if err := check(t, row, startCol); err != nil {
		return err
	}
	if err := check(t, row, endCol-1); err != nil {
		return err
	}
	for col := startCol; col < endCol; col++ {
		if err := t.SetPixel(row, col, c); err != nil {
			return err
		}
	}
	return nil
}

// VerticalLine paints rows [startRow, endRow) of col. An empty span draws
// nothing.
func VerticalLine[C any](t Target[C], col, startRow, endRow int, c C) error {
	if startRow >= endRow {
		return nil
	}
	if err := check(t, startRow, col); err != nil {
		return err
	}
	if err := check(t, endRow-1, col); err != nil {
		return err
	}
	for row := startRow; row < endRow; row++ {
		if err := t.SetPixel(row, col, c); err != nil {
			return err
		}
	}
	return nil
}

// Line paints the Bresenham line from (startRow, startCol) to
// (endRow, endCol), endpoints included. Every point of the line lies in
// the bounding box of its endpoints, so checking both endpoints covers
// the whole line.
func Line[C any](t Target[C], startCol, startRow, endCol, endRow int, c C) error {
	if err := check(t, startRow, startCol); err != nil {
		return err
	}
	if err := check(t, endRow, endCol); err != nil {
		return err
	}

	var err error
	bresenham(startCol, startRow, endCol, endRow, func(row, col int) bool {
		err = t.SetPixel(row, col, c)
		return err == nil
	})
	return err
}

// Points returns the pixels Line would paint, ordered along the major
// axis in increasing direction. X is the column and Y the row.
func Points(startCol, startRow, endCol, endRow int) []image.Point {
	var pts []image.Point
	bresenham(startCol, startRow, endCol, endRow, func(row, col int) bool {
		pts = append(pts, image.Point{X: col, Y: row})
		return true
	})
	return pts
}

// plotFn receives each rasterized pixel and returns false to stop.
type plotFn func(row, col int) bool

func bresenham(startCol, startRow, endCol, endRow int, plot plotFn) {
	if absInt(endRow-startRow) < absInt(endCol-startCol) {
		swap := startCol > endCol
		swapIf(&startCol, &endCol, swap)
		swapIf(&startRow, &endRow, swap)
		plotLow(startCol, startRow, endCol, endRow, plot)
		return
	}

	swap := startRow > endRow
	swapIf(&startCol, &endCol, swap)
	swapIf(&startRow, &endRow, swap)
	plotHigh(startCol, startRow, endCol, endRow, plot)
}

// plotLow steps one column at a time; requires startCol <= endCol.
func plotLow(startCol, startRow, endCol, endRow int, plot plotFn) {
	dx, dy := endCol-startCol, endRow-startRow
	rowStep := 1
	if dy < 0 {
		rowStep, dy = -1, -dy
	}

	d := 2*dy - dx
	row := startRow
	for col := startCol; col <= endCol; col++ {
		if !plot(row, col) {
			return
		}
		if d > 0 {
			row += rowStep
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// plotHigh steps one row at a time; requires startRow <= endRow.
func plotHigh(startCol, startRow, endCol, endRow int, plot plotFn) {
	dx, dy := endCol-startCol, endRow-startRow
	colStep := 1
	if dx < 0 {
		colStep, dx = -1, -dx
	}

	d := 2*dx - dy
	col := startCol
	for row := startRow; row <= endRow; row++ {
		if !plot(row, col) {
			return
		}
		if d > 0 {
			col += colStep
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
