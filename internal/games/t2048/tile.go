package t2048

import "fmt"

// Tile is a numbered tile at a fixed board position.
// Tiles are immutable: moving or merging produces a new Tile, so a
// pointer identifies one tile for the duration of a tilt.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile creates a tile with the given value at physical (col, row).
func NewTile(value, col, row int) *Tile {
	return &Tile{value: value, col: col, row: row}
}

// Value returns the tile value.
func (t *Tile) Value() int { return t.value }

// Col returns the physical column.
func (t *Tile) Col() int { return t.col }

// Row returns the physical row.
func (t *Tile) Row() int { return t.row }

// at returns a copy of t relocated to (col, row).
func (t *Tile) at(col, row int) *Tile {
	return &Tile{value: t.value, col: col, row: row}
}

// mergedAt returns the tile produced by merging t into a tile of equal
// value at (col, row).
func (t *Tile) mergedAt(col, row int) *Tile {
	return &Tile{value: 2 * t.value, col: col, row: row}
}

func (t *Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.value, t.col, t.row)
}

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
