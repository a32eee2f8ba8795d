package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/game2048/internal/games/t2048"
)

// LoadT2048 loads 2048 configuration. Fields missing from the file keep
// their default values.
// Search order: customPath -> ~/.game2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
func LoadT2048(customPath string) (T2048Config, error) {
	cfg := DefaultT2048Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "t2048.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, broken or unplayable
// files are skipped.
func tryLoad(path string) (T2048Config, bool) {
	cfg := DefaultT2048Config()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".game2048", "configs", filename)
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	cfg.Spawn.Prob4 = Prob4ForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.InitialTiles = 2
	case DifficultyHard:
		cfg.Spawn.InitialTiles = min(3, cfg.Board.Size*cfg.Board.Size)
	}
}

// BoardFile is a saved 2048 position. Rows are written top row first,
// the way the board is printed.
type BoardFile struct {
	Rows     [][]int `yaml:"rows"`
	Score    int     `yaml:"score"`
	MaxScore int     `yaml:"max_score"`
	GameOver bool    `yaml:"game_over"`
}

// LoadBoardFile reads a board file from disk.
func LoadBoardFile(path string) (BoardFile, error) {
	var f BoardFile

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read board %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse board %s: %w", path, err)
	}
	return f, nil
}

// Model builds the game described by the file.
func (f BoardFile) Model() (*t2048.Model, error) {
	// Engine grids keep row 0 at the bottom.
	raw := slices.Clone(f.Rows)
	slices.Reverse(raw)

	m, err := t2048.NewModelFromValues(raw, f.Score, f.MaxScore, f.GameOver)
	if err != nil {
		return nil, fmt.Errorf("board file: %w", err)
	}
	return m, nil
}

// BoardFileFrom captures a model as a board file.
func BoardFileFrom(m *t2048.Model) BoardFile {
	rows := m.Board().Values()
	slices.Reverse(rows)
	return BoardFile{
		Rows:     rows,
		Score:    m.Score(),
		MaxScore: m.MaxScore(),
		GameOver: m.GameOver(),
	}
}

// Save writes the board file to disk.
func (f BoardFile) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write board %s: %w", path, err)
	}
	return nil
}
