package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Moves     uint64
	Mode      string // "classic", "campaign" or "endless"
	Level     int    // Current level (1-indexed for display), 0 outside campaign
	Target    int    // Current max piece, 0 when disabled
	Score     int
	HighScore int
	Board     [][]int // Indexed [row][col], row 0 at the bottom
	MaxTile   int     // Highest tile on board
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won, g.mode == ModeClassic && MaxTileExists(g.model.Board(), g.model.MaxPiece()):
		state = StateWin
	case g.model.GameOver():
		state = StateGameOver
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Moves:     g.moves,
		Mode:      string(g.mode),
		Level:     level,
		Target:    g.model.MaxPiece(),
		Score:     g.model.Score(),
		HighScore: g.State().HighScore,
		Board:     g.model.Board().Values(),
		MaxTile:   g.model.Board().MaxValue(),
		State:     state,
	}
}
