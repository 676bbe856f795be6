/*
Package tiledir implements reading and writing a font as a directory of tile
images.

Each of the 256 tiles is stored as its own PNG file named after its index,
zero padded to three digits: 000.png to 255.png. Every file must have the
same dimensions. Other files in the directory are ignored.

Tiles are decoded and encoded concurrently; errors are reported for the
lowest failing index regardless of the number of workers.
*/
package tiledir

import (
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bodgit/osdfont/internal/fsutil"
	"github.com/bodgit/osdfont/internal/pipeline"
	"github.com/bodgit/osdfont/tile"
)

// Ext is the file extension of every tile image
const Ext = ".png"

// Filename returns the name of the file holding tile i
func Filename(i int) string {
	return fmt.Sprintf("%03d%s", i, Ext)
}

func readTile(path string) (*tile.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := png.Decode(f)
	if err != nil {
		return nil, &fs.PathError{Op: "decode", Path: path, Err: err}
	}

	return tile.FromImage(m), nil
}

// Read loads the tile directory dir using up to workers goroutines. The
// first absent tile is reported as a *tile.MissingTileError. Tile 000 sets
// the geometry of the collection and the first tile of a different size is
// reported as a *tile.GeometryError.
func Read(dir string, workers int) (*tile.Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		present[e.Name()] = struct{}{}
	}
	for i := 0; i < tile.Count; i++ {
		if _, ok := present[Filename(i)]; !ok {
			return nil, &tile.MissingTileError{Path: dir, Index: i}
		}
	}

	c := new(tile.Collection)

	if c[0], err = readTile(filepath.Join(dir, Filename(0))); err != nil {
		return nil, err
	}
	size := c[0].Size()

	if err := pipeline.Run(workers, tile.Count-1, func(i int) error {
		i++
		path := filepath.Join(dir, Filename(i))
		t, err := readTile(path)
		if err != nil {
			return err
		}
		if t.Size() != size {
			return &tile.GeometryError{
				Path:     path,
				Index:    i,
				Size:     t.Size(),
				Expected: size,
			}
		}
		c[i] = t
		return nil
	}); err != nil {
		return nil, err
	}

	return c, nil
}

func writeTile(path string, t *tile.Tile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, t.Image()); err != nil {
		f.Close()
		return &fs.PathError{Op: "encode", Path: path, Err: err}
	}

	return f.Close()
}

// Write saves c as a tile directory at dir using up to workers goroutines.
// dir is created if needed; it is an error for dir to exist as anything
// other than a directory. Existing tile images are overwritten.
func Write(dir string, c *tile.Collection, workers int) error {
	if _, err := c.Geometry(); err != nil {
		return err
	}

	if err := fsutil.MkdirAll(dir); err != nil {
		return err
	}

	return pipeline.Run(workers, tile.Count, func(i int) error {
		return writeTile(filepath.Join(dir, Filename(i)), c[i])
	})
}
