// Package tiletest provides collection fixtures for tests.
package tiletest

import (
	"math/rand"

	"github.com/bodgit/osdfont/tile"
)

// Collection returns a collection of width by height tiles filled with
// pseudo-random pixels derived from seed. Every tile contains fully
// transparent pixels with a non-zero color so codecs that drop color under
// zero alpha are caught.
func Collection(width, height int, seed int64) *tile.Collection {
	r := rand.New(rand.NewSource(seed))
	c := new(tile.Collection)
	for i := range c {
		pix := make([]byte, width*height*4)
		r.Read(pix)
		// Tag the first pixel with the tile index
		pix[0], pix[1], pix[2], pix[3] = byte(i), byte(i>>8), 0xa5, 0xff
		if len(pix) > 4 {
			pix[4], pix[5], pix[6], pix[7] = 0x12, 0x34, 0x56, 0x00
		}
		c[i] = tile.FromPix(width, height, pix)
	}
	return c
}
