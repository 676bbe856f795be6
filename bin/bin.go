/*
Package bin implements the OSD font bin file decoder and encoder.

A bin file is loaded as is by the goggles firmware. It is a flat sequence of
256 tile records in index order with no header and no padding. Each record is
the tile's pixels row by row, four bytes per pixel holding the red, green,
blue and alpha components; alpha is not premultiplied.

The firmware knows two tile kinds, SD tiles of 36 by 54 pixels and HD tiles
of 24 by 36 pixels, so a valid file is either 1990656 or 884736 bytes. The
kind of a file is detected from its size.
*/
package bin

import (
	"fmt"
	"image"

	"github.com/bodgit/osdfont/tile"
)

const bytesPerPixel = 4

// A Kind is a tile geometry supported by the firmware.
type Kind int

const (
	// SD tiles are used by the standard definition OSD
	SD Kind = iota
	// HD tiles are used by the high definition OSD
	HD
)

var kinds = []Kind{SD, HD}

var dimensions = map[Kind]image.Point{
	SD: image.Pt(36, 54),
	HD: image.Pt(24, 36),
}

func (k Kind) String() string {
	switch k {
	case SD:
		return "SD"
	case HD:
		return "HD"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dimensions returns the size of one tile of this kind
func (k Kind) Dimensions() image.Point {
	return dimensions[k]
}

// TileSize returns the number of bytes used by one tile record
func (k Kind) TileSize() int {
	d := k.Dimensions()
	return d.X * d.Y * bytesPerPixel
}

// FileSize returns the number of bytes of a bin file of this kind
func (k Kind) FileSize() int64 {
	return int64(k.TileSize()) * tile.Count
}

// KindForSize returns the kind of a bin file of n bytes.
func KindForSize(n int64) (Kind, bool) {
	for _, k := range kinds {
		if k.FileSize() == n {
			return k, true
		}
	}
	return 0, false
}

// KindForDimensions returns the kind of tiles sized d.
func KindForDimensions(d image.Point) (Kind, bool) {
	for _, k := range kinds {
		if k.Dimensions() == d {
			return k, true
		}
	}
	return 0, false
}

func fileSizes() []int64 {
	sizes := make([]int64, len(kinds))
	for i, k := range kinds {
		sizes[i] = k.FileSize()
	}
	return sizes
}
