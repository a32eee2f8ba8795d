package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSide is returned by ParseSide for unrecognized names.
var ErrUnknownSide = errors.New("unknown side")

// Side is the edge of the board that tiles are tilted toward.
// Values double as clockwise rotation indices (North = 0 ... West = 3).
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Sides lists all four sides in rotation order.
var Sides = [...]Side{North, East, South, West}

// sideOrigin describes how a side's view maps onto the board:
// col = col0*(size-1) + c*drow + r*dcol
// row = row0*(size-1) - c*dcol + r*drow
type sideOrigin struct {
	col0, row0 int
	dcol, drow int
}

var origins = [...]sideOrigin{
	North: {col0: 0, row0: 0, dcol: 0, drow: 1},
	East:  {col0: 0, row0: 1, dcol: 1, drow: 0},
	South: {col0: 1, row0: 1, dcol: 0, drow: -1},
	West:  {col0: 1, row0: 0, dcol: -1, drow: 0},
}

// Col returns the physical column of logical (c, r) when viewing the
// board with s at the top.
func (s Side) Col(c, r, size int) int {
	o := origins[s]
	return o.col0*(size-1) + c*o.drow + r*o.dcol
}

// Row returns the physical row of logical (c, r) when viewing the
// board with s at the top.
func (s Side) Row(c, r, size int) int {
	o := origins[s]
	return o.row0*(size-1) - c*o.dcol + r*o.drow
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= North && s <= West
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts compass names, arrow names and their first letters.
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "n", "north", "u", "up":
		return North, nil
	case "e", "east", "r", "right":
		return East, nil
	case "s", "south", "d", "down":
		return South, nil
	case "w", "west", "l", "left":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}
