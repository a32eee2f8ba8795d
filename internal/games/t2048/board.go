package t2048

import "fmt"

// BoardSize is the default board dimension.
const BoardSize = 4

// Cell is a physical board position.
type Cell struct {
	Col, Row int
}

// Board is a square grid of tiles addressed by (column, row) with row 0
// at the bottom. All Tile and Move calls go through the current viewing
// perspective; it must be North whenever the board leaves the resolver.
type Board struct {
	size  int
	cells [][]*Tile // cells[col][row], physical frame
	view  Side
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("t2048: invalid board size %d", size))
	}
	cells := make([][]*Tile, size)
	for c := range cells {
		cells[c] = make([]*Tile, size)
	}
	return &Board{size: size, cells: cells, view: North}
}

// NewBoardFromValues builds a board from raw values indexed [row][col],
// where raw[0] is the bottom row and 0 means empty.
func NewBoardFromValues(raw [][]int) (*Board, error) {
	size := len(raw)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	b := NewBoard(size)
	for row, line := range raw {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, row, len(line), size)
		}
		for col, v := range line {
			if v == 0 {
				continue
			}
			if !isPowerOfTwo(v) {
				return nil, fmt.Errorf("%w: value %d at (%d, %d) is not a power of two", ErrInvalidGrid, v, col, row)
			}
			b.cells[col][row] = NewTile(v, col, row)
		}
	}
	return b, nil
}

// Size returns the number of cells along one side.
func (b *Board) Size() int {
	return b.size
}

// Tile returns the tile at (col, row) in the current perspective, or nil.
// Out-of-range coordinates panic.
func (b *Board) Tile(col, row int) *Tile {
	b.checkBounds(col, row)
	return b.cells[b.view.Col(col, row, b.size)][b.view.Row(col, row, b.size)]
}

// AddTile places t at its own (physical) position.
func (b *Board) AddTile(t *Tile) error {
	b.checkBounds(t.col, t.row)
	if b.cells[t.col][t.row] != nil {
		return &OccupiedCellError{Col: t.col, Row: t.row}
	}
	b.cells[t.col][t.row] = t
	return nil
}

// Move relocates t to (col, row) in the current perspective and returns
// the tile now standing there. If the destination holds a tile of equal
// value the two merge and the second result is true. Moving onto a tile
// of a different value, or moving a tile that is not on the board, panics.
func (b *Board) Move(col, row int, t *Tile) (*Tile, bool) {
	b.checkBounds(col, row)
	if b.cells[t.col][t.row] != t {
		panic(fmt.Sprintf("t2048: tile %v is not on the board", t))
	}

	pc, pr := b.view.Col(col, row, b.size), b.view.Row(col, row, b.size)
	if pc == t.col && pr == t.row {
		return t, false
	}

	occupant := b.cells[pc][pr]
	if occupant != nil && occupant.value != t.value {
		panic(fmt.Sprintf("t2048: cannot move %v onto %v", t, occupant))
	}

	b.cells[t.col][t.row] = nil
	if occupant == nil {
		moved := t.at(pc, pr)
		b.cells[pc][pr] = moved
		return moved, false
	}

	merged := t.mergedAt(pc, pr)
	b.cells[pc][pr] = merged
	return merged, true
}

// SetViewingPerspective makes subsequent Tile and Move calls address the
// board as if s were at the top. No tiles move.
func (b *Board) SetViewingPerspective(s Side) {
	if !s.Valid() {
		panic(fmt.Sprintf("t2048: invalid side %d", int(s)))
	}
	b.view = s
}

// ResetPerspective restores the identity (North) mapping.
func (b *Board) ResetPerspective() {
	b.view = North
}

// Perspective returns the current viewing side.
func (b *Board) Perspective() Side {
	return b.view
}

// Clear removes every tile.
func (b *Board) Clear() {
	for c := range b.cells {
		clear(b.cells[c])
	}
}

// Values returns the raw grid indexed [row][col] with row 0 at the
// bottom, matching NewBoardFromValues.
func (b *Board) Values() [][]int {
	raw := make([][]int, b.size)
	for row := range b.size {
		raw[row] = make([]int, b.size)
		for col := range b.size {
			if t := b.cells[col][row]; t != nil {
				raw[row][col] = t.value
			}
		}
	}
	return raw
}

// EmptyCells returns the physical positions of all empty cells, bottom
// row first.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range b.size {
		for col := range b.size {
			if b.cells[col][row] == nil {
				cells = append(cells, Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// Count returns the number of tiles on the board.
func (b *Board) Count() int {
	n := 0
	for _, column := range b.cells {
		for _, t := range column {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// MaxValue returns the largest tile value, or 0 for an empty board.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, column := range b.cells {
		for _, t := range column {
			if t != nil && t.value > maxVal {
				maxVal = t.value
			}
		}
	}
	return maxVal
}

func (b *Board) checkBounds(col, row int) {
	if col < 0 || col >= b.size || row < 0 || row >= b.size {
		panic(fmt.Sprintf("t2048: cell (%d, %d) out of range for %dx%d board", col, row, b.size, b.size))
	}
}
