package t2048

import (
	"math/rand"

	"github.com/vovakirdan/game2048/internal/core"
	"github.com/vovakirdan/game2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Settings control the board and the source of new tiles.
type Settings struct {
	Size         int     // Board dimension
	MaxPiece     int     // Winning tile in classic mode
	Spawn4       float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
	InitialTiles int     // Tiles spawned on reset
}

// DefaultSettings returns the classic 4x4 rules.
func DefaultSettings() Settings {
	return Settings{
		Size:         BoardSize,
		MaxPiece:     MaxPiece,
		Spawn4:       0.10,
		InitialTiles: 2,
	}
}

// Game drives a Model from abstract input actions. It owns everything
// the engine does not: the random source of new tiles, the game mode and
// the best score of the session.
type Game struct {
	mode     Mode
	settings Settings
	rng      *rand.Rand
	moves    uint64

	model      *Model
	levelIndex int // Current level (0-indexed), campaign only
	spawn4Prob float64
	spawning   bool
	highScore  int

	won bool
}

// Package-level variables for config
var (
	selectedStartLevel int
	selectedSettings   = DefaultSettings()
)

// SetStartLevel sets the starting campaign level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetSettings sets the settings used by games created afterwards.
func SetSettings(s Settings) {
	selectedSettings = s
}

// GetSettings returns the settings used for new games.
func GetSettings() Settings {
	return selectedSettings
}

// New creates a new classic 2048 game.
func New() *Game {
	return newGame(ModeClassic)
}

// NewCampaign creates a new campaign mode 2048 game.
func NewCampaign() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

func newGame(mode Mode) *Game {
	g := &Game{
		mode:     mode,
		settings: selectedSettings,
		rng:      rand.New(rand.NewSource(1)),
		spawning: true,
		model:    NewModel(selectedSettings.Size),
	}
	g.loadLevel()
	return g
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_campaign", func() registry.Game {
		return NewCampaign()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return "2048_campaign"
	case ModeEndless:
		return "2048_endless"
	default:
		return "2048"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "2048 (Campaign)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Model returns the engine state. Callers must not mutate it.
func (g *Game) Model() *Model {
	return g.model
}

// SetSpawning turns tile spawning after tilted moves on or off.
func (g *Game) SetSpawning(on bool) {
	g.spawning = on
}

// SetHighScore seeds the session high score, e.g. from stored history.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// Reset initializes/restarts the game with an empty board and the
// initial tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.moves = 0
	g.won = false
	g.model = NewModel(g.settings.Size)

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()

	for range g.settings.InitialTiles {
		g.spawnTile()
	}
}

// ResetFrom restarts the game on a prepared model instead of an empty
// board. No initial tiles are spawned.
func (g *Game) ResetFrom(cfg core.RuntimeConfig, m *Model) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.moves = 0
	g.won = false
	g.levelIndex = 0
	g.model = m
	g.loadLevel()
	g.reachLevel()
	g.SetHighScore(m.MaxScore())
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	switch g.mode {
	case ModeEndless:
		g.spawn4Prob = g.settings.Spawn4
		g.model.SetMaxPiece(0) // No target in endless
	case ModeCampaign:
		level := GetLevel(g.levelIndex)
		if level == nil {
			// Shouldn't happen, but default to last level
			level = GetLevel(LevelCount() - 1)
		}
		g.spawn4Prob = level.Spawn4
		g.model.SetMaxPiece(level.Target)
	default:
		g.spawn4Prob = g.settings.Spawn4
		g.model.SetMaxPiece(g.settings.MaxPiece)
	}
}

// spawnTile spawns a new tile (2 or 4) in a random empty cell.
func (g *Game) spawnTile() {
	emptyCells := g.model.Board().EmptyCells()
	if len(emptyCells) == 0 {
		return
	}

	cell := emptyCells[g.rng.Intn(len(emptyCells))]

	value := 2
	if g.rng.Float64() < g.spawn4Prob {
		value = 4
	}

	// The cell came from EmptyCells, so an error here is a bug.
	if err := g.model.AddTile(NewTile(value, cell.Col, cell.Row)); err != nil {
		panic(err)
	}
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.over() {
		g.restart()
		return core.StepResult{State: g.State(), Tilted: true}
	}

	// Don't process moves if game over or won
	if g.over() {
		return core.StepResult{State: g.State()}
	}

	side, ok := sideForInput(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res := g.model.Tilt(side)
	if !res.Tilted {
		// Board didn't change - don't spawn new tile
		return core.StepResult{State: g.State()}
	}
	g.moves++

	g.reachLevel()

	if g.spawning && !g.won {
		g.spawnTile()
	}
	g.SetHighScore(g.model.Score())

	return core.StepResult{State: g.State(), Tilted: true}
}

// sideForInput maps the first direction action found to a side.
func sideForInput(in core.InputFrame) (Side, bool) {
	switch {
	case in.Has(core.ActionUp):
		return North, true
	case in.Has(core.ActionDown):
		return South, true
	case in.Has(core.ActionLeft):
		return West, true
	case in.Has(core.ActionRight):
		return East, true
	}
	return North, false
}

// reachLevel advances the campaign past every level whose target is
// already on the board or beaten by a larger tile.
func (g *Game) reachLevel() {
	for g.mode == ModeCampaign && !g.won && g.model.Board().MaxValue() >= g.model.MaxPiece() {
		g.advanceLevel()
	}
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	if g.levelIndex >= LevelCount()-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// restart clears the board and spawns fresh tiles. The RNG keeps its
// sequence so a whole session stays reproducible from one seed.
func (g *Game) restart() {
	g.model.Clear()
	g.moves = 0
	g.won = false
	g.levelIndex = 0
	g.loadLevel()
	for range g.settings.InitialTiles {
		g.spawnTile()
	}
}

func (g *Game) over() bool {
	return g.won || g.model.GameOver()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.model.Score(),
		HighScore: max(g.highScore, g.model.MaxScore()),
		GameOver:  g.over(),
	}
}
