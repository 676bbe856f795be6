package tile

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	// ErrSizeMismatch is matched by any *SizeError
	ErrSizeMismatch = errors.New("size mismatch")
	// ErrGeometryMismatch is matched by any *GeometryError
	ErrGeometryMismatch = errors.New("geometry mismatch")
	// ErrMissingTile is matched by any *MissingTileError
	ErrMissingTile = errors.New("missing tile")
)

// A SizeError records a file whose length is not a valid encoding of a
// collection.
type SizeError struct {
	Path     string
	Actual   int64
	Expected []int64
}

func (e *SizeError) Error() string {
	sizes := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		sizes[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("%s: %v: %d bytes, expected %s", e.Path, ErrSizeMismatch, e.Actual, strings.Join(sizes, " or "))
}

// Is allows errors.Is(err, ErrSizeMismatch)
func (e *SizeError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// A GeometryError records a tile or image whose dimensions are not allowed.
// Index is -1 when the error concerns a whole image rather than one tile.
type GeometryError struct {
	Path     string
	Index    int
	Size     image.Point
	Expected image.Point
	Reason   string
}

func (e *GeometryError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "%s: ", e.Path)
	}
	b.WriteString(ErrGeometryMismatch.Error())
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": tile %03d", e.Index)
	}
	fmt.Fprintf(&b, ": %dx%d", e.Size.X, e.Size.Y)
	if e.Expected != (image.Point{}) {
		fmt.Fprintf(&b, ", expected %dx%d", e.Expected.X, e.Expected.Y)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ", %s", e.Reason)
	}
	return b.String()
}

// Is allows errors.Is(err, ErrGeometryMismatch)
func (e *GeometryError) Is(target error) bool {
	return target == ErrGeometryMismatch
}

// A MissingTileError records the first absent tile of a collection.
type MissingTileError struct {
	Path  string
	Index int
}

func (e *MissingTileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %03d", ErrMissingTile, e.Index)
	}
	return fmt.Sprintf("%s: %v: %03d", e.Path, ErrMissingTile, e.Index)
}

// Is allows errors.Is(err, ErrMissingTile)
func (e *MissingTileError) Is(target error) bool {
	return target == ErrMissingTile
}
