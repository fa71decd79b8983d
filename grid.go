package smooth

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Channels is the number of 8-bit intensities stored per pixel.
const Channels = 3

// Pixel holds the three independent channel intensities of one cell.
// For grids built from an image.Image the order is R, G, B.
type Pixel [Channels]uint8

// Gray returns a pixel with all three channels set to v.
func Gray(v uint8) Pixel {
	return Pixel{v, v, v}
}

// Grid is a rectangular buffer of 3-channel pixels.
//
// The dimensions are fixed at construction. Pixels are stored row-major,
// Channels bytes per pixel, with no padding between rows.
//
// Thread safety: a Grid is safe for concurrent reads. Concurrent writes
// must target disjoint rows; see Parallel.
type Grid struct {
	rows int
	cols int
	pix  []uint8
}

// NewGrid creates a zero-filled grid with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is negative.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	return newGrid(rows, cols), nil
}

// newGrid allocates without validation. Callers pass dimensions taken
// from an existing grid.
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows: rows,
		cols: cols,
		pix:  make([]uint8, rows*cols*Channels),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Data returns the raw row-major pixel data.
func (g *Grid) Data() []uint8 {
	return g.pix
}

// SameSize reports whether g and other have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

// In reports whether (r, c) lies inside the grid.
func (g *Grid) In(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the pixel at (r, c). Out-of-range coordinates yield the zero
// pixel.
func (g *Grid) At(r, c int) Pixel {
	if !g.In(r, c) {
		return Pixel{}
	}
	i := (r*g.cols + c) * Channels
	return Pixel{g.pix[i], g.pix[i+1], g.pix[i+2]}
}

// Set writes the pixel at (r, c). Out-of-range coordinates are ignored.
func (g *Grid) Set(r, c int, p Pixel) {
	if !g.In(r, c) {
		return
	}
	i := (r*g.cols + c) * Channels
	copy(g.pix[i:i+Channels], p[:])
}

// Row returns the raw bytes of row r, or nil if r is out of range.
func (g *Grid) Row(r int) []uint8 {
	if r < 0 || r >= g.rows {
		return nil
	}
	stride := g.cols * Channels
	return g.pix[r*stride : (r+1)*stride]
}

// Fill sets every pixel to p.
func (g *Grid) Fill(p Pixel) {
	for i := 0; i < len(g.pix); i += Channels {
		g.pix[i+0] = p[0]
		g.pix[i+1] = p[1]
		g.pix[i+2] = p[2]
	}
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.cols)
	copy(c.pix, g.pix)
	return c
}

// Equal reports whether g and other have the same dimensions and every
// pixel matches on all three channels.
func (g *Grid) Equal(other *Grid) bool {
	if !g.SameSize(other) {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Image converts the grid to an opaque *image.NRGBA. Grid rows map to the
// image Y axis and columns to X.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.cols, g.rows))
	for r := range g.rows {
		src := g.Row(r)
		dst := img.Pix[r*img.Stride:]
		for c := range g.cols {
			dst[c*4+0] = src[c*Channels+0]
			dst[c*4+1] = src[c*Channels+1]
			dst[c*4+2] = src[c*Channels+2]
			dst[c*4+3] = 0xff
		}
	}
	return img
}

// FromImage creates a grid from any image.Image. Alpha is discarded: the
// stored intensities are the non-premultiplied R, G, B values.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := newGrid(b.Dy(), b.Dx())

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		// Generic path: let x/image/draw handle the color model conversion.
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}

	for r := range g.rows {
		src := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+r):]
		dst := g.Row(r)
		for c := range g.cols {
			dst[c*Channels+0] = src[c*4+0]
			dst[c*Channels+1] = src[c*4+1]
			dst[c*Channels+2] = src[c*4+2]
		}
	}
	return g
}

// Color returns p as an opaque color.NRGBA.
func (p Pixel) Color() color.NRGBA {
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
}
