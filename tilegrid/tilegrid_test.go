package tilegrid

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/osdfont/internal/tiletest"
	"github.com/bodgit/osdfont/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	tables := []struct {
		path   string
		format Format
		err    bool
	}{
		{"grid.png", PNG, false},
		{"GRID.PNG", PNG, false},
		{"grid.tif", TIFF, false},
		{"dir/grid.tiff", TIFF, false},
		{"grid.jpg", 0, true},
		{"grid", 0, true},
	}

	for _, table := range tables {
		t.Run(table.path, func(t *testing.T) {
			f, err := FormatForPath(table.path)
			if table.err {
				assert.ErrorIs(t, err, ErrUnsupportedExtension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, table.format, f)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"grid.png", "grid.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			c := tiletest.Collection(24, 36, 7)

			require.NoError(t, WriteFile(path, c))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.True(t, c.Equal(got))
		})
	}
}

func TestIndexMapping(t *testing.T) {
	d := image.Pt(3, 5)
	c := tiletest.Collection(d.X, d.Y, 2)

	m, err := Image(c)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 80), m.Bounds())

	for i := 0; i < tile.Count; i++ {
		ox, oy := (i%16)*d.X, (i/16)*d.Y
		for y := 0; y < d.Y; y++ {
			for x := 0; x < d.X; x++ {
				require.Equal(t, c[i].NRGBAAt(x, y), m.NRGBAAt(ox+x, oy+y), "tile %d (%d, %d)", i, x, y)
			}
		}
	}

	got, err := FromImage(m)
	require.NoError(t, err)
	for i := range got {
		assert.True(t, c[i].Equal(got[i]), "tile %d", i)
	}
}

func TestFromImageGeometry(t *testing.T) {
	w, h := 24, 36

	tables := []struct {
		name string
		size image.Point
		err  bool
	}{
		{"exact", image.Pt(16*w, 16*h), false},
		{"wide", image.Pt(16*w+1, 16*h), true},
		{"tall", image.Pt(16*w, 16*h+1), true},
		{"empty", image.Pt(0, 0), true},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			c, err := FromImage(image.NewNRGBA(image.Rectangle{Max: table.size}))
			if table.err {
				assert.ErrorIs(t, err, tile.ErrGeometryMismatch)
				var gerr *tile.GeometryError
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, table.size, gerr.Size)
				return
			}
			require.NoError(t, err)
			for _, tl := range c {
				assert.Equal(t, image.Pt(w, h), tl.Size())
			}
		})
	}
}

func TestFromImageOffset(t *testing.T) {
	m := image.NewNRGBA(image.Rect(5, 7, 5+32, 7+16))
	m.SetNRGBA(5+31, 7+15, color.NRGBA{1, 2, 3, 4})

	c, err := FromImage(m)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{1, 2, 3, 4}, c[255].NRGBAAt(1, 0))
}

func TestReadFileGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 16*3+1, 16*3))))
	require.NoError(t, f.Close())

	_, err = ReadFile(path)
	var gerr *tile.GeometryError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, path, gerr.Path)
}

func TestDecodeGray(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 32, 32))
	m.SetGray(2, 0, color.Gray{0x40})

	b := new(bytes.Buffer)
	require.NoError(t, png.Encode(b, m))

	c, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x40, 0x40, 0x40, 0xff}, c[1].NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, c[0].NRGBAAt(0, 0))
}

func TestWriteFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.bmp")

	err := WriteFile(path, tiletest.Collection(2, 2, 1))
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteFileMissingTile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	c := tiletest.Collection(2, 2, 1)
	c[9] = nil

	err := WriteFile(path, c)
	assert.ErrorIs(t, err, tile.ErrMissingTile)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteFileMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "grid.png")

	err := WriteFile(path, tiletest.Collection(2, 2, 1))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	var perr *fs.PathError
	assert.ErrorAs(t, err, &perr)
}
