package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the caller.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen by this game instance
	GameOver  bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each step.
// Callers use Tilted to decide whether anything needs redrawing or
// persisting; games never push notifications themselves.
type StepResult struct {
	State  GameState
	Tilted bool // The board changed during this step
}
