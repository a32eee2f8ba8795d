package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{
			Size:     4,
			MaxPiece: 2048,
		},
		Spawn: T2048Spawn{
			Prob4:        0.10,
			InitialTiles: 2,
		},
		Campaign: T2048Campaign{
			StartLevel: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048", "2048_campaign", "2048_endless":
		return defaultT2048YAML
	default:
		return nil
	}
}
