package t2048

import (
	"errors"
	"reflect"
	"testing"
)

func mustModel(t *testing.T, raw [][]int, score, maxScore int) *Model {
	t.Helper()
	m, err := NewModelFromValues(raw, score, maxScore, false)
	if err != nil {
		t.Fatalf("NewModelFromValues(%v) failed: %v", raw, err)
	}
	return m
}

func TestModelString(t *testing.T) {
	m := mustModel(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 128, 0},
		{0, 0, 0, 2048},
	}, 12, 40)

	want := "\n[\n" +
		"|    |    |    |2048|\n" +
		"|    |    | 128|    |\n" +
		"|    |    |    |    |\n" +
		"|   2|    |    |    |\n" +
		"] 12 (max: 40) (game is over) \n"

	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestModelStringNotOver(t *testing.T) {
	m := NewModel(2)
	_ = m.AddTile(NewTile(4, 1, 0))

	want := "\n[\n|    |    |\n|    |   4|\n] 0 (max: 0) (game is not over) \n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestModelRoundTrip(t *testing.T) {
	raw := [][]int{
		{2, 4, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 16, 0},
		{32, 0, 0, 64},
	}
	m := mustModel(t, raw, 0, 0)

	if !reflect.DeepEqual(m.Board().Values(), raw) {
		t.Errorf("Values() = %v, want %v", m.Board().Values(), raw)
	}
	for row, line := range raw {
		for col, v := range line {
			tile := m.Tile(col, row)
			switch {
			case v == 0 && tile != nil:
				t.Errorf("Tile(%d, %d) = %v, want empty", col, row, tile)
			case v != 0 && (tile == nil || tile.Value() != v):
				t.Errorf("Tile(%d, %d) = %v, want %d", col, row, tile, v)
			}
		}
	}

	// The dump lists the top row first.
	want := "\n[\n" +
		"|  32|    |    |  64|\n" +
		"|    |    |  16|    |\n" +
		"|    |   8|    |    |\n" +
		"|   2|   4|    |    |\n" +
		"] 0 (max: 0) (game is not over) \n"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestModelTiltScore(t *testing.T) {
	m := mustModel(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 10, 0)

	res := m.Tilt(West)

	if !res.Tilted || res.Gained != 4 || res.Merges != 1 {
		t.Errorf("Tilt(West) = %+v, want tilted with 4 gained and 1 merge", res)
	}
	if m.Score() != 14 {
		t.Errorf("Score() = %d, want 14", m.Score())
	}
	if res.GameOver {
		t.Error("game should not be over")
	}

	res = m.Tilt(West)
	if res.Tilted || m.Score() != 14 {
		t.Errorf("second Tilt(West) = %+v score %d, want no-op", res, m.Score())
	}
}

func TestModelReachingMaxPieceEndsGame(t *testing.T) {
	m := mustModel(t, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 100, 500)

	res := m.Tilt(East)

	if !res.GameOver || !m.GameOver() {
		t.Fatal("merging into the max piece should end the game")
	}
	if m.Score() != 2148 {
		t.Errorf("Score() = %d, want 2148", m.Score())
	}
	if m.MaxScore() != 2148 {
		t.Errorf("MaxScore() = %d, want 2148", m.MaxScore())
	}
	if m.Tile(3, 0).Value() != 2048 {
		t.Errorf("Tile(3, 0) = %v, want 2048", m.Tile(3, 0))
	}
}

func TestModelMaxScoreKeptWhenLower(t *testing.T) {
	m := mustModel(t, checkerboard(4), 30, 500)

	if !m.GameOver() {
		t.Fatal("full board without moves should be over")
	}
	if m.MaxScore() != 500 {
		t.Errorf("MaxScore() = %d, want 500", m.MaxScore())
	}
}

func TestModelSetMaxPiece(t *testing.T) {
	m := mustModel(t, [][]int{{128, 0}, {0, 0}}, 0, 0)

	if m.GameOver() {
		t.Fatal("128 should not end a game played to 2048")
	}

	m.SetMaxPiece(128)
	if !m.GameOver() {
		t.Error("128 should end a game played to 128")
	}

	m.SetMaxPiece(0)
	if m.GameOver() {
		t.Error("disabled max piece should not end the game")
	}
}

func TestModelAddTile(t *testing.T) {
	m := NewModel(4)

	if err := m.AddTile(NewTile(2, 0, 0)); err != nil {
		t.Fatalf("AddTile failed: %v", err)
	}
	if err := m.AddTile(NewTile(2, 0, 0)); !errors.Is(err, ErrOccupiedCell) {
		t.Errorf("AddTile on occupied cell error = %v, want ErrOccupiedCell", err)
	}
}

func TestModelClear(t *testing.T) {
	m := mustModel(t, checkerboard(4), 64, 10)
	m.GameOver()

	m.Clear()

	if m.Score() != 0 {
		t.Errorf("Score() after Clear = %d, want 0", m.Score())
	}
	if m.MaxScore() != 64 {
		t.Errorf("MaxScore() after Clear = %d, want 64", m.MaxScore())
	}
	if m.Board().Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", m.Board().Count())
	}
	if m.GameOver() {
		t.Error("cleared game should not be over")
	}
}

func TestModelEqualAndHash(t *testing.T) {
	raw := [][]int{{2, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 8}}

	a := mustModel(t, raw, 8, 16)
	b := mustModel(t, raw, 8, 16)
	if !a.Equal(b) {
		t.Error("models with the same dump should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal models should hash the same")
	}

	c := mustModel(t, raw, 12, 16)
	if a.Equal(c) {
		t.Error("models with different scores should differ")
	}

	d := mustModel(t, [][]int{{2, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 0, 0}, {0, 0, 8, 0}}, 8, 16)
	if a.Equal(d) {
		t.Error("models with different tiles should differ")
	}

	if a.Equal(nil) {
		t.Error("model should not equal nil")
	}
}

func TestModelPerspectiveResetAfterTilt(t *testing.T) {
	m := mustModel(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
	}, 0, 0)

	// The tile starts on the north edge, so the North tilt leaves it where East put it.
	m.Tilt(East)
	m.Tilt(North)

	if m.Board().Perspective() != North {
		t.Errorf("perspective = %v, want north", m.Board().Perspective())
	}
	if tile := m.Tile(3, 3); tile == nil || tile.Value() != 2 {
		t.Errorf("Tile(3, 3) = %v, want 2 in the unrotated frame", tile)
	}
}

func TestNewModelFromValuesInvalid(t *testing.T) {
	if _, err := NewModelFromValues([][]int{{2, 3}, {0, 0}}, 0, 0, false); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("error = %v, want ErrInvalidGrid", err)
	}
}
