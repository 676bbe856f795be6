package osdfont

import (
	"fmt"

	"github.com/bodgit/osdfont/bin"
	"github.com/bodgit/osdfont/tile"
	"github.com/bodgit/osdfont/tilegrid"
)

// Codec returns the codec handling f.
func (c *Converter) Codec(f Format) (Codec, error) {
	codec, ok := c.codecs[f]
	if !ok {
		return nil, &UnknownFormatError{Kind: f.String()}
	}
	return codec, nil
}

// Decode reads the collection described by from.
func (c *Converter) Decode(from FormatSpec) (*tile.Collection, error) {
	codec, err := c.Codec(from.Format)
	if err != nil {
		return nil, err
	}

	tiles, err := codec.Decode(from.Path)
	if err != nil {
		return nil, err
	}

	size, err := tiles.Geometry()
	if err != nil {
		return nil, err
	}

	kind := "custom"
	if k, ok := bin.KindForDimensions(size); ok {
		kind = k.String()
	}
	c.logger.Debug("decoded collection", "source", from, "width", size.X, "height", size.Y, "kind", kind)

	return tiles, nil
}

// Encode writes tiles as described by to.
func (c *Converter) Encode(tiles *tile.Collection, to FormatSpec) error {
	codec, err := c.Codec(to.Format)
	if err != nil {
		return err
	}
	return codec.Encode(tiles, to.Path)
}

// checkTarget rejects targets that cannot be written regardless of the
// source.
func checkTarget(to FormatSpec) error {
	if to.Format == TileGrid {
		if _, err := tilegrid.FormatForPath(to.Path); err != nil {
			return err
		}
	}
	return nil
}

// Convert decodes from and encodes the result to to. The target is checked
// before the source is read.
func (c *Converter) Convert(from, to FormatSpec) error {
	if _, err := c.Codec(to.Format); err != nil {
		return fmt.Errorf("writing %s: %w", to, err)
	}
	if err := checkTarget(to); err != nil {
		return fmt.Errorf("writing %s: %w", to, err)
	}

	c.logger.Info("converting", "from", from, "to", to)

	tiles, err := c.Decode(from)
	if err != nil {
		return fmt.Errorf("reading %s: %w", from, err)
	}

	if err := c.Encode(tiles, to); err != nil {
		return fmt.Errorf("writing %s: %w", to, err)
	}

	c.logger.Info("converted", "from", from, "to", to)

	return nil
}

// ConvertDescriptors parses both descriptors and converts between them.
func (c *Converter) ConvertDescriptors(from, to string) error {
	fromSpec, err := ParseFormatSpec(from)
	if err != nil {
		return fmt.Errorf("invalid source %q: %w", from, err)
	}

	toSpec, err := ParseFormatSpec(to)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", to, err)
	}

	return c.Convert(fromSpec, toSpec)
}
