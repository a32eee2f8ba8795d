package t2048

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MaxPiece is the default winning tile value.
const MaxPiece = 2048

// Model is the state of one 2048 game: the board, the score, the best
// score seen so far and whether the game has ended.
//
// Model never notifies anyone. Tilt reports what happened and the caller
// decides what to do with it.
type Model struct {
	board    *Board
	score    int
	maxScore int
	gameOver bool
	maxPiece int
}

// NewModel creates an empty size x size game with score 0.
func NewModel(size int) *Model {
	return &Model{
		board:    NewBoard(size),
		maxPiece: MaxPiece,
	}
}

// NewModelFromValues creates a game from raw tile values indexed
// [row][col] with (0, 0) the bottom-left cell and 0 meaning empty.
func NewModelFromValues(raw [][]int, score, maxScore int, gameOver bool) (*Model, error) {
	b, err := NewBoardFromValues(raw)
	if err != nil {
		return nil, err
	}
	return &Model{
		board:    b,
		score:    score,
		maxScore: maxScore,
		gameOver: gameOver,
		maxPiece: MaxPiece,
	}, nil
}

// Tile returns the tile at (col, row), or nil if the cell is empty.
func (m *Model) Tile(col, row int) *Tile {
	return m.board.Tile(col, row)
}

// Size returns the number of cells along one side of the board.
func (m *Model) Size() int {
	return m.board.Size()
}

// Board exposes the underlying board for read-only queries.
func (m *Model) Board() *Board {
	return m.board
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score, updated whenever the game is over.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// MaxPiece returns the tile value that ends the game (0 = none).
func (m *Model) MaxPiece() int {
	return m.maxPiece
}

// SetMaxPiece changes the winning tile value. Zero or less disables the
// max-tile condition.
func (m *Model) SetMaxPiece(v int) {
	m.maxPiece = v
	m.checkGameOver()
}

// GameOver re-evaluates the board and returns true if the game has ended.
func (m *Model) GameOver() bool {
	m.checkGameOver()
	return m.gameOver
}

// Clear empties the board and resets score and game-over state.
// MaxScore is kept.
func (m *Model) Clear() {
	m.score = 0
	m.gameOver = false
	m.board.Clear()
}

// AddTile places t on the board. The target cell must be empty.
func (m *Model) AddTile(t *Tile) error {
	if err := m.board.AddTile(t); err != nil {
		return err
	}
	m.checkGameOver()
	return nil
}

// Tilt moves every tile toward side, merging equal neighbors, and adds
// the merged values to the score.
func (m *Model) Tilt(side Side) TiltResult {
	res := tilt(m.board, side)
	m.score += res.Gained
	m.checkGameOver()
	res.GameOver = m.gameOver
	return res
}

// checkGameOver refreshes the game-over flag and folds the score into
// the max score once the game has ended.
func (m *Model) checkGameOver() {
	m.gameOver = IsGameOver(m.board, m.maxPiece)
	if m.gameOver {
		m.maxScore = max(m.score, m.maxScore)
	}
}

// String dumps the board top row first, then the score line.
func (m *Model) String() string {
	var sb strings.Builder
	size := m.Size()

	sb.WriteString("\n[\n")
	for row := size - 1; row >= 0; row-- {
		for col := range size {
			if t := m.Tile(col, row); t == nil {
				sb.WriteString("|    ")
			} else {
				fmt.Fprintf(&sb, "|%4d", t.Value())
			}
		}
		sb.WriteString("|\n")
	}

	over := "not over"
	if m.GameOver() {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.score, m.maxScore, over)
	return sb.String()
}

// Equal reports whether both games have the same textual dump.
func (m *Model) Equal(other *Model) bool {
	if other == nil {
		return false
	}
	return m.String() == other.String()
}

// Hash returns a hash of the textual dump, consistent with Equal.
func (m *Model) Hash() uint64 {
	return xxhash.Sum64String(m.String())
}
