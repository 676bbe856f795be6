/*
Package osdfont converts FPV goggle OSD fonts between a bin file, a directory
of tile images and a single tile grid image.

Every conversion decodes the source into a tile.Collection and encodes that
collection to the target, so any pair of formats can be converted, including
a format to itself.
*/
package osdfont

import (
	"github.com/bodgit/osdfont/bin"
	"github.com/bodgit/osdfont/tile"
	"github.com/bodgit/osdfont/tiledir"
	"github.com/bodgit/osdfont/tilegrid"
	"github.com/hashicorp/go-hclog"
)

// A Codec reads and writes a collection in one external format.
type Codec interface {
	Decode(path string) (*tile.Collection, error)
	Encode(c *tile.Collection, path string) error
}

type binCodec struct{}

func (binCodec) Decode(path string) (*tile.Collection, error) {
	return bin.ReadFile(path)
}

func (binCodec) Encode(c *tile.Collection, path string) error {
	return bin.WriteFile(path, c)
}

type tileDirCodec struct {
	workers int
}

func (t tileDirCodec) Decode(path string) (*tile.Collection, error) {
	return tiledir.Read(path, t.workers)
}

func (t tileDirCodec) Encode(c *tile.Collection, path string) error {
	return tiledir.Write(path, c, t.workers)
}

type tileGridCodec struct{}

func (tileGridCodec) Decode(path string) (*tile.Collection, error) {
	return tilegrid.ReadFile(path)
}

func (tileGridCodec) Encode(c *tile.Collection, path string) error {
	return tilegrid.WriteFile(path, c)
}

// Converter converts fonts between formats.
type Converter struct {
	codecs map[Format]Codec
	logger hclog.Logger
}

// New returns a Converter logging to logger, which may be nil. workers
// bounds the number of tiles processed concurrently by formats that can,
// values less than one use one worker per CPU.
func New(logger hclog.Logger, workers int) *Converter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Converter{
		codecs: map[Format]Codec{
			Bin:      binCodec{},
			TileDir:  tileDirCodec{workers: workers},
			TileGrid: tileGridCodec{},
		},
		logger: logger,
	}
}
