// Package env wraps one engine instance in the reset/step loop an RL host
// expects: byte-grid observations, shaped scalar rewards and a terminated
// flag. Reward bookkeeping lives here, outside the engine, so the simulation
// core stays reward-free.
package env

import (
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// RewardConfig controls the reward shaping applied on top of score deltas.
type RewardConfig struct {
	// StepPenalty is subtracted on every step to discourage stalling.
	StepPenalty float64
	// LossPenalty is subtracted once the step reports a lost game.
	LossPenalty float64
}

// DefaultRewards returns the shaping the original training runs used.
func DefaultRewards() RewardConfig {
	return RewardConfig{
		StepPenalty: 0.01,
		LossPenalty: 100.0,
	}
}

// Config bundles the engine parameters with the reward shaping.
type Config struct {
	Game    tetris.Config
	Rewards RewardConfig
}

// StepResult is what one environment step hands back to the driver.
type StepResult struct {
	// Observation is a fresh width x height copy, never aliased by the env.
	Observation []byte
	Reward      float64
	Terminated  bool
	Info        tetris.GameState
}

// Env is a single-agent environment around one engine instance. Like the
// engine it wraps, an Env is exclusively owned by one driver.
type Env struct {
	game *tetris.Game
	cfg  Config
	size int
}

// New creates an environment and its engine.
func New(cfg Config) *Env {
	return &Env{
		game: tetris.New(cfg.Game),
		cfg:  cfg,
		size: cfg.Game.Width * cfg.Game.Height,
	}
}

// Reset starts a new episode and returns the initial observation and state.
func (e *Env) Reset() ([]byte, tetris.GameState) {
	e.game.Reset()
	return e.observation(), e.game.State()
}

// Step applies one action. The reward is the score delta minus the step
// penalty, with the loss penalty applied when the episode terminates.
// Stepping a terminated environment keeps returning the frozen state; drivers
// are expected to call Reset instead.
func (e *Env) Step(a tetris.Action) StepResult {
	prev := e.game.State()
	state := e.game.Step(a)

	reward := float64(state.Score-prev.Score) - e.cfg.Rewards.StepPenalty
	if state.Lost {
		reward -= e.cfg.Rewards.LossPenalty
	}

	return StepResult{
		Observation: e.observation(),
		Reward:      reward,
		Terminated:  state.Lost,
		Info:        state,
	}
}

// State returns the current engine snapshot without stepping.
func (e *Env) State() tetris.GameState {
	return e.game.State()
}

// Lines returns the total rows cleared in the current episode.
func (e *Env) Lines() int {
	return e.game.Lines()
}

func (e *Env) observation() []byte {
	buf := make([]byte, e.size)
	// Buffer size always matches the engine dimensions here.
	_ = e.game.ReadBoard(buf)
	return buf
}
