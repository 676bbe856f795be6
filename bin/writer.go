package bin

import (
	"io"

	"github.com/bodgit/osdfont/internal/fsutil"
	"github.com/bodgit/osdfont/tile"
)

type encoder struct {
	w    io.Writer
	kind Kind
}

func (e *encoder) encode(c *tile.Collection) error {
	b := make([]byte, 0, e.kind.TileSize())
	for _, t := range c {
		b = t.AppendPix(b[:0])
		if _, err := e.w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the collection c to w in bin file format. The tiles must
// all be of a kind the firmware supports, otherwise a *tile.GeometryError is
// returned and nothing is written.
func Encode(w io.Writer, c *tile.Collection) error {
	size, err := c.Geometry()
	if err != nil {
		return err
	}

	k, ok := KindForDimensions(size)
	if !ok {
		return &tile.GeometryError{
			Index:  -1,
			Size:   size,
			Reason: "not an SD or HD tile size",
		}
	}

	e := encoder{w: w, kind: k}

	return e.encode(c)
}

// WriteFile encodes c to path. The file is first written under a temporary
// name in the same directory and renamed once complete so a failure never
// leaves a partial file at path.
func WriteFile(path string, c *tile.Collection) error {
	// Validate before touching the filesystem
	size, err := c.Geometry()
	if err != nil {
		return err
	}
	if _, ok := KindForDimensions(size); !ok {
		return &tile.GeometryError{
			Path:   path,
			Index:  -1,
			Size:   size,
			Reason: "not an SD or HD tile size",
		}
	}

	return fsutil.WriteFile(path, func(w io.Writer) error {
		return Encode(w, c)
	})
}
