// Package pixels implements packed two-dimensional pixel storage.
//
// A Raster owns one contiguous slice of words laid out row-major with a
// fixed stride. How pixels are packed into words is described by a Codec,
// so the same storage serves 1-bit and 24-bit formats.
package pixels

import (
	"slices"

	"github.com/32bitkid/canvas"
)

// Word is the storage unit of a raster row.
type Word interface {
	~uint8 | ~uint32
}

// Codec describes how pixels of type C are packed into words of type W.
//
// Locate is the only place column arithmetic happens: it maps a pixel
// column to an index inside a single row and a bit shift inside that
// word. Rows are selected by the raster, never by the codec.
type Codec[C any, W Word] interface {
	Name() string
	CheckWidth(width int) error
	RowWords(width int) int
	Locate(col int) (index int, shift uint)
	Get(row []W, col int) C
	Set(row []W, col int, c C)
}

// Raster is a width x height grid of packed pixels.
type Raster[C any, W Word] struct {
	codec  Codec[C, W]
	width  int
	height int
	stride int
	pix    []W
}

// New allocates a zeroed raster. Both dimensions must lie in
// [canvas.MinSize, canvas.MaxSize] and the width must satisfy the codec.
func New[C any, W Word](codec Codec[C, W], width, height int) (*Raster[C, W], error) {
	err := canvas.CheckDimension(canvas.AxisWidth, width)
	if err == nil {
		err = canvas.CheckDimension(canvas.AxisHeight, height)
	}
	if err == nil {
		err = codec.CheckWidth(width)
	}
	if err != nil {
		canvas.Logger().Debug("pixels: rejected dimensions",
			"format", codec.Name(), "width", width, "height", height, "err", err)
		return nil, err
	}

	stride := codec.RowWords(width)
	canvas.Logger().Debug("pixels: allocate",
		"format", codec.Name(), "width", width, "height", height, "stride", stride)

	return &Raster[C, W]{
		codec:  codec,
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]W, stride*height),
	}, nil
}

func (r *Raster[C, W]) Width() int  { return r.width }
func (r *Raster[C, W]) Height() int { return r.height }

// Stride is the number of words in each row.
func (r *Raster[C, W]) Stride() int { return r.stride }

// Codec returns the pixel format of the raster.
func (r *Raster[C, W]) Codec() Codec[C, W] { return r.codec }

// Row returns the words of one row. The slice aliases the raster storage
// and is capped so appends never spill into the next row.
func (r *Raster[C, W]) Row(row int) []W {
	i := row * r.stride
	return r.pix[i : i+r.stride : i+r.stride]
}

// Check validates row against the height, then col against the width.
func (r *Raster[C, W]) Check(row, col int) error {
	if err := canvas.CheckIndex(canvas.AxisRow, row, r.height); err != nil {
		return err
	}
	return canvas.CheckIndex(canvas.AxisCol, col, r.width)
}

// At returns the pixel at (row, col).
func (r *Raster[C, W]) At(row, col int) (C, error) {
	if err := r.Check(row, col); err != nil {
		var zero C
		return zero, err
	}
	return r.codec.Get(r.Row(row), col), nil
}

// Set writes the pixel at (row, col).
func (r *Raster[C, W]) Set(row, col int, c C) error {
	if err := r.Check(row, col); err != nil {
		return err
	}
	r.codec.Set(r.Row(row), col, c)
	return nil
}

// Fill sets every pixel to c. The first row is encoded pixel by pixel and
// then copied into the remaining rows.
func (r *Raster[C, W]) Fill(c C) {
	first := r.Row(0)
	for col := 0; col < r.width; col++ {
		r.codec.Set(first, col, c)
	}
	for row := 1; row < r.height; row++ {
		copy(r.Row(row), first)
	}
}

// Invert complements every stored word.
func (r *Raster[C, W]) Invert() {
	for i, w := range r.pix {
		r.pix[i] = ^w
	}
}

// Clone returns a deep copy sharing no storage with r.
func (r *Raster[C, W]) Clone() *Raster[C, W] {
	canvas.Logger().Debug("pixels: clone",
		"format", r.codec.Name(), "width", r.width, "height", r.height)

	return &Raster[C, W]{
		codec:  r.codec,
		width:  r.width,
		height: r.height,
		stride: r.stride,
		pix:    slices.Clone(r.pix),
	}
}

// Equal reports whether o has the same dimensions and stored words.
func (r *Raster[C, W]) Equal(o *Raster[C, W]) bool {
	return r.width == o.width && r.height == o.height && slices.Equal(r.pix, o.pix)
}
