package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// final fallback when even the embedded yaml fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			LineScores: []int32{0, 1, 2, 3, 4},
		},
		Rewards: RewardsConfig{
			StepPenalty: 0.01,
			LossPenalty: 100.0,
		},
		Gravity: GravityConfig{
			TicksPerSecond: 2,
		},
	}
}
