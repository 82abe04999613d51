// Package config provides YAML-based configuration loading for the
// simulation, reward shaping and interactive play.
package config

import (
	"github.com/vovakirdan/tetris-gym/internal/env"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// Config contains everything tunable from a yaml file.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rewards RewardsConfig `yaml:"rewards"`
	Gravity GravityConfig `yaml:"gravity"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines the score increment per lines cleared in one lock.
// Index 0 corresponds to a lock that clears nothing and stays zero; the list
// is padded or truncated to the engine's four-entry table.
type ScoringConfig struct {
	LineScores []int32 `yaml:"line_scores"`
}

// RewardsConfig defines the RL reward shaping.
type RewardsConfig struct {
	StepPenalty float64 `yaml:"step_penalty"`
	LossPenalty float64 `yaml:"loss_penalty"`
}

// GravityConfig defines how often the interactive platform issues gravity
// ticks. Headless drivers issue ticks themselves and ignore this.
type GravityConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// EngineConfig converts the loaded config into an engine config with the
// given seed.
func (c Config) EngineConfig(seed int64) tetris.Config {
	cfg := tetris.DefaultConfig()
	if c.Board.Width > 0 {
		cfg.Width = c.Board.Width
	}
	if c.Board.Height > 0 {
		cfg.Height = c.Board.Height
	}
	cfg.Seed = seed
	for i, s := range c.Scoring.LineScores {
		if i >= len(cfg.LineScores) {
			break
		}
		cfg.LineScores[i] = s
	}
	return cfg
}

// EnvConfig converts the loaded config into an environment config.
func (c Config) EnvConfig(seed int64) env.Config {
	return env.Config{
		Game: c.EngineConfig(seed),
		Rewards: env.RewardConfig{
			StepPenalty: c.Rewards.StepPenalty,
			LossPenalty: c.Rewards.LossPenalty,
		},
	}
}
