package bin

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/bodgit/osdfont/tile"
)

var errNotRegular = errors.New("bin: not a regular file")

type decoder struct {
	kind Kind
	b    []byte
}

func (d *decoder) decode() *tile.Collection {
	dim := d.kind.Dimensions()
	n := d.kind.TileSize()

	c := new(tile.Collection)
	for i := range c {
		c[i] = tile.FromPix(dim.X, dim.Y, d.b[i*n:(i+1)*n])
	}
	return c
}

// Decode reads a whole bin file from r. A *tile.SizeError is returned if
// the amount of data does not match any tile kind.
func Decode(r io.Reader) (*tile.Collection, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	k, ok := KindForSize(int64(len(b)))
	if !ok {
		return nil, &tile.SizeError{Actual: int64(len(b)), Expected: fileSizes()}
	}

	d := decoder{kind: k, b: b}
	return d.decode(), nil
}

// ReadFile decodes the bin file at path. The size of the file is checked
// before anything is read.
func ReadFile(path string) (*tile.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if !info.Mode().IsRegular() {
		return nil, &fs.PathError{Op: "read", Path: path, Err: errNotRegular}
	}

	if _, ok := KindForSize(info.Size()); !ok {
		return nil, &tile.SizeError{Path: path, Actual: info.Size(), Expected: fileSizes()}
	}

	c, err := Decode(f)
	if err != nil {
		var serr *tile.SizeError
		if errors.As(err, &serr) {
			// File changed underneath us
			serr.Path = path
			return nil, serr
		}
		return nil, &fs.PathError{Op: "read", Path: path, Err: err}
	}
	return c, nil
}
