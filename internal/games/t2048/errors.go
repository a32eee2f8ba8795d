package t2048

import (
	"errors"
	"fmt"
)

var (
	// ErrOccupiedCell matches any *OccupiedCellError.
	ErrOccupiedCell = errors.New("cell is already occupied")
	// ErrInvalidGrid is returned when a raw value grid cannot form a board.
	ErrInvalidGrid = errors.New("invalid grid")
)

// OccupiedCellError reports an attempt to add a tile on top of another.
// Callers only add tiles to cells they know are empty, so this signals a
// broken caller rather than a recoverable game condition.
type OccupiedCellError struct {
	Col, Row int
}

func (e *OccupiedCellError) Error() string {
	return fmt.Sprintf("t2048: cell (%d, %d) is already occupied", e.Col, e.Row)
}

// Is makes errors.Is(err, ErrOccupiedCell) succeed.
func (e *OccupiedCellError) Is(target error) bool {
	return target == ErrOccupiedCell
}
