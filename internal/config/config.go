// Package config provides YAML-based configuration loading, difficulty
// presets and board files for 2048.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/game2048/internal/games/t2048"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be played.
var ErrInvalidConfig = errors.New("invalid config")

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Board    T2048Board    `yaml:"board"`
	Spawn    T2048Spawn    `yaml:"spawn"`
	Campaign T2048Campaign `yaml:"campaign"`
}

// T2048Board defines the board dimensions and the winning tile.
type T2048Board struct {
	Size     int `yaml:"size"`
	MaxPiece int `yaml:"max_piece"` // 0 disables the max-tile condition
}

// T2048Spawn defines how new tiles appear.
type T2048Spawn struct {
	Prob4        float64 `yaml:"prob_4"`
	InitialTiles int     `yaml:"initial_tiles"`
}

// T2048Campaign defines campaign parameters.
type T2048Campaign struct {
	StartLevel int `yaml:"start_level"` // 1-based
}

// Validate checks that the configuration describes a playable game.
func (c T2048Config) Validate() error {
	switch {
	case c.Board.Size < 2:
		return fmt.Errorf("%w: board.size %d must be at least 2", ErrInvalidConfig, c.Board.Size)
	case c.Board.MaxPiece < 0 || (c.Board.MaxPiece > 0 && c.Board.MaxPiece&(c.Board.MaxPiece-1) != 0):
		return fmt.Errorf("%w: board.max_piece %d must be 0 or a power of two", ErrInvalidConfig, c.Board.MaxPiece)
	case c.Spawn.Prob4 < 0 || c.Spawn.Prob4 > 1:
		return fmt.Errorf("%w: spawn.prob_4 %v must be within [0, 1]", ErrInvalidConfig, c.Spawn.Prob4)
	case c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Size*c.Board.Size:
		return fmt.Errorf("%w: spawn.initial_tiles %d does not fit the board", ErrInvalidConfig, c.Spawn.InitialTiles)
	case c.Campaign.StartLevel < 0 || c.Campaign.StartLevel > t2048.LevelCount():
		return fmt.Errorf("%w: campaign.start_level %d out of range", ErrInvalidConfig, c.Campaign.StartLevel)
	}
	return nil
}

// Settings converts the configuration into game settings.
func (c T2048Config) Settings() t2048.Settings {
	return t2048.Settings{
		Size:         c.Board.Size,
		MaxPiece:     c.Board.MaxPiece,
		Spawn4:       c.Spawn.Prob4,
		InitialTiles: c.Spawn.InitialTiles,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset parses a difficulty name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// Prob4ForPreset returns the chance of spawning a 4 for a difficulty preset.
func Prob4ForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.10
	}
}
