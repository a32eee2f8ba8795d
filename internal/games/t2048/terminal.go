package t2048

// The queries below are read-only and always scan the whole board, one
// visit per cell, whatever its size.

// EmptySpaceExists returns true if at least one cell is empty.
func EmptySpaceExists(b *Board) bool {
	empty := 0
	size := b.Size()
	for row := range size {
		for col := range size {
			if b.Tile(col, row) == nil {
				empty++
			}
		}
	}
	return empty > 0
}

// MaxTileExists returns true if any tile equals maxPiece.
// A non-positive maxPiece never matches.
func MaxTileExists(b *Board, maxPiece int) bool {
	if maxPiece <= 0 {
		return false
	}
	found := false
	size := b.Size()
	for row := range size {
		for col := range size {
			if t := b.Tile(col, row); t != nil && t.Value() == maxPiece {
				found = true
			}
		}
	}
	return found
}

// AtLeastOneMoveExists returns true if a cell is empty or two
// horizontally or vertically adjacent tiles share a value.
func AtLeastOneMoveExists(b *Board) bool {
	movable := false
	size := b.Size()
	for row := range size {
		for col := range size {
			t := b.Tile(col, row)
			if t == nil {
				movable = true
				continue
			}
			// Check right neighbor
			if col < size-1 && sameValue(t, b.Tile(col+1, row)) {
				movable = true
			}
			// Check upper neighbor
			if row < size-1 && sameValue(t, b.Tile(col, row+1)) {
				movable = true
			}
		}
	}
	return movable
}

// IsGameOver returns true if maxPiece is on the board or no move is left.
func IsGameOver(b *Board, maxPiece int) bool {
	return MaxTileExists(b, maxPiece) || !AtLeastOneMoveExists(b)
}

func sameValue(a, b *Tile) bool {
	return a != nil && b != nil && a.Value() == b.Value()
}
