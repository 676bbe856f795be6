package osdfont

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedDescriptor is returned for a descriptor without a ':'
	ErrMalformedDescriptor = errors.New("malformed descriptor, expected kind:path")
	// ErrUnknownFormat is matched by any *UnknownFormatError
	ErrUnknownFormat = errors.New("unknown format")
)

// UnknownFormatError records a descriptor kind that is not recognised.
type UnknownFormatError struct {
	Kind string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownFormat, e.Kind)
}

// Is allows errors.Is(err, ErrUnknownFormat)
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// A Format identifies one of the external font representations.
type Format int

const (
	// Bin is the packed binary file loaded by the goggles
	Bin Format = iota
	// TileDir is a directory with one image per tile
	TileDir
	// TileGrid is a single image with every tile in a 16x16 grid
	TileGrid
)

var formatNames = map[Format]string{
	Bin:      "bin",
	TileDir:  "tiledir",
	TileGrid: "tilegrid",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatSpec is a parsed kind:path descriptor.
type FormatSpec struct {
	Format Format
	Path   string
}

func (s FormatSpec) String() string {
	return s.Format.String() + ":" + s.Path
}

// ParseFormatSpec parses a descriptor such as "bin:font.bin". The kind is
// everything before the first ':' and is matched case-sensitively; the rest
// is the path.
func ParseFormatSpec(s string) (FormatSpec, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return FormatSpec{}, ErrMalformedDescriptor
	}
	kind, path := s[:i], s[i+1:]

	for f, name := range formatNames {
		if name == kind {
			return FormatSpec{Format: f, Path: path}, nil
		}
	}

	return FormatSpec{}, &UnknownFormatError{Kind: kind}
}
