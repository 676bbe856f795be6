/*
Package tilegrid implements reading and writing a font as a single image
holding every tile.

The tiles are arranged in a grid of 16 columns and 16 rows with no spacing.
Tile i is in column i%16 and row i/16, so for tiles of W by H pixels it
occupies the rectangle starting at (W*(i%16), H*(i/16)) and the whole image
is 16*W by 16*H pixels.

Grid images are written as PNG or TIFF depending on the file extension and
may be read from any registered image format.
*/
package tilegrid

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/osdfont/internal/fsutil"
	"github.com/bodgit/osdfont/tile"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedExtension is returned when the file extension of a grid
// image does not name a format it can be written in.
var ErrUnsupportedExtension = errors.New("tilegrid: unsupported image extension")

// A Format is an image container a grid can be written as.
type Format int

const (
	// PNG is the default format
	PNG Format = iota
	// TIFF keeps unassociated alpha like PNG does
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath returns the format matching the extension of path.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, &fs.PathError{Op: "encode", Path: path, Err: ErrUnsupportedExtension}
	}
}

// Size returns the size of a grid image of tiles sized d
func Size(d image.Point) image.Point {
	return image.Pt(d.X*tile.GridColumns, d.Y*tile.GridRows)
}

func cell(i int, d image.Point) image.Rectangle {
	col, row := tile.GridPosition(i)
	p := image.Pt(col*d.X, row*d.Y)
	return image.Rectangle{Min: p, Max: p.Add(d)}
}

// FromImage splits m into a collection. The dimensions of m must be
// non-zero multiples of 16, otherwise a *tile.GeometryError is returned.
func FromImage(m image.Image) (*tile.Collection, error) {
	b := m.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || b.Dx()%tile.GridColumns != 0 || b.Dy()%tile.GridRows != 0 {
		return nil, &tile.GeometryError{
			Index:  -1,
			Size:   b.Size(),
			Reason: fmt.Sprintf("not a non-zero multiple of %dx%d", tile.GridColumns, tile.GridRows),
		}
	}
	d := image.Pt(b.Dx()/tile.GridColumns, b.Dy()/tile.GridRows)

	full := tile.FromImage(m).Image()

	c := new(tile.Collection)
	for i := range c {
		c[i] = tile.FromImage(full.SubImage(cell(i, d)))
	}
	return c, nil
}

// Image composes the collection into a grid image.
func Image(c *tile.Collection) (*image.NRGBA, error) {
	d, err := c.Geometry()
	if err != nil {
		return nil, err
	}

	s := Size(d)
	m := image.NewNRGBA(image.Rect(0, 0, s.X, s.Y))
	for i, t := range c {
		t.DrawTo(m, cell(i, d).Min)
	}
	return m, nil
}

// Decode reads a grid image in any registered format from r.
func Decode(r io.Reader) (*tile.Collection, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(m)
}

// Encode writes c to w as a grid image in format f.
func Encode(w io.Writer, c *tile.Collection, f Format) error {
	m, err := Image(c)
	if err != nil {
		return err
	}

	switch f {
	case PNG:
		return png.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("tilegrid: unsupported format %v", f)
	}
}

// ReadFile decodes the grid image at path.
func ReadFile(path string) (*tile.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, &fs.PathError{Op: "decode", Path: path, Err: err}
	}

	c, err := FromImage(m)
	if err != nil {
		var gerr *tile.GeometryError
		if errors.As(err, &gerr) {
			gerr.Path = path
		}
		return nil, err
	}
	return c, nil
}

// WriteFile encodes c to path in the format implied by its extension. The
// image is written to a temporary file first and renamed into place.
func WriteFile(path string, c *tile.Collection) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}

	if _, err := c.Geometry(); err != nil {
		return err
	}

	return fsutil.WriteFile(path, func(w io.Writer) error {
		return Encode(w, c, f)
	})
}
