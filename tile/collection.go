package tile

import "image"

// A Collection is a complete font, indexed 0 to Count-1.
type Collection [Count]*Tile

// GridPosition returns the column and row of the tile at index i in a tile
// grid.
func GridPosition(i int) (col, row int) {
	return i % GridColumns, i / GridColumns
}

// GridIndex is the inverse of GridPosition.
func GridIndex(col, row int) int {
	return row*GridColumns + col
}

// Geometry returns the size shared by every tile in the collection. Tile 0
// is the reference; the first tile with a different size is reported as a
// *GeometryError and the first missing tile as a *MissingTileError.
func (c *Collection) Geometry() (image.Point, error) {
	var size image.Point
	for i, t := range c {
		if t == nil {
			return image.Point{}, &MissingTileError{Index: i}
		}
		if i == 0 {
			size = t.Size()
			continue
		}
		if t.Size() != size {
			return image.Point{}, &GeometryError{
				Index:    i,
				Size:     t.Size(),
				Expected: size,
			}
		}
	}
	return size, nil
}

// Equal reports whether both collections hold equal tiles at every index
func (c *Collection) Equal(o *Collection) bool {
	for i := range c {
		switch {
		case c[i] == nil && o[i] == nil:
		case c[i] == nil || o[i] == nil:
			return false
		case !c[i].Equal(o[i]):
			return false
		}
	}
	return true
}
