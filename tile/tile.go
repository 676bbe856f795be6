/*
Package tile implements the in-memory model shared by every OSD font codec.

A font is a collection of exactly 256 tiles. Each tile is a small bitmap of
non-premultiplied 8-bit RGBA pixels; the color of a pixel is kept even when
its alpha is zero. The index of a tile within the collection is its identity
in every external representation: index 0 is the first record of a bin file,
"000.png" in a tile directory and the top left cell of a tile grid.

Tiles in a grid are laid out row-major, 16 tiles per row and 16 rows.
*/
package tile

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	// Count is the number of tiles in a collection
	Count = 256

	// GridColumns is the number of tiles in each row of a tile grid
	GridColumns = 16
	// GridRows is the number of rows of a tile grid
	GridRows = Count / GridColumns
)

// A Tile is a fixed size bitmap. Once part of a Collection it should be
// treated as read-only.
type Tile struct {
	m *image.NRGBA
}

// New returns a fully transparent tile of the given size.
func New(width, height int) *Tile {
	return &Tile{
		m: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// FromImage returns a tile holding a copy of m. The top-left corner of m
// becomes (0, 0) of the tile.
func FromImage(m image.Image) *Tile {
	b := m.Bounds()
	t := New(b.Dx(), b.Dy())
	if nm, ok := m.(*image.NRGBA); ok {
		// Copy the bytes as is, a draw would round trip through
		// premultiplied color and lose the color of transparent pixels
		copyNRGBA(t.m, image.Point{}, nm, b)
		return t
	}
	if pm, ok := m.(*image.Paletted); ok {
		// Palette entries are usually color.NRGBA which NRGBAModel
		// passes through unchanged, transparent entries included
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				t.m.Set(x, y, pm.At(b.Min.X+x, b.Min.Y+y))
			}
		}
		return t
	}
	draw.Draw(t.m, t.m.Bounds(), m, b.Min, draw.Src)
	return t
}

// FromPix returns a tile of the given size using pix as its pixel data, four
// bytes per pixel in R, G, B, A order. The slice is copied.
func FromPix(width, height int, pix []byte) *Tile {
	t := New(width, height)
	copy(t.m.Pix, pix)
	return t
}

func copyNRGBA(dst *image.NRGBA, dp image.Point, src *image.NRGBA, sr image.Rectangle) {
	sr = sr.Intersect(src.Bounds())
	n := sr.Dx() * 4
	for y := 0; y < sr.Dy(); y++ {
		di := dst.PixOffset(dp.X, dp.Y+y)
		si := src.PixOffset(sr.Min.X, sr.Min.Y+y)
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}

// Width returns the width of the tile in pixels
func (t *Tile) Width() int {
	return t.m.Rect.Dx()
}

// Height returns the height of the tile in pixels
func (t *Tile) Height() int {
	return t.m.Rect.Dy()
}

// Size returns the dimensions of the tile as a point
func (t *Tile) Size() image.Point {
	return t.m.Rect.Size()
}

// NRGBAAt returns the pixel at (x, y)
func (t *Tile) NRGBAAt(x, y int) color.NRGBA {
	return t.m.NRGBAAt(x, y)
}

// Image returns the tile as an image. The returned image shares its pixels
// with the tile and must not be modified.
func (t *Tile) Image() *image.NRGBA {
	return t.m
}

// AppendPix appends the pixels of the tile to b, four bytes per pixel in
// R, G, B, A order, row by row.
func (t *Tile) AppendPix(b []byte) []byte {
	n := t.Width() * 4
	for y := 0; y < t.Height(); y++ {
		i := t.m.PixOffset(0, y)
		b = append(b, t.m.Pix[i:i+n]...)
	}
	return b
}

// DrawTo copies the tile into dst with its top-left corner at dp
func (t *Tile) DrawTo(dst *image.NRGBA, dp image.Point) {
	copyNRGBA(dst, dp, t.m, t.m.Rect)
}

// Equal reports whether both tiles have the same size and pixels
func (t *Tile) Equal(o *Tile) bool {
	if t.Size() != o.Size() {
		return false
	}
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if t.m.NRGBAAt(x, y) != o.m.NRGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}
