package env

import (
	"math/rand"

	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// Policy selects the next action given the current observation and state.
type Policy interface {
	Select(obs []byte, state tetris.GameState) tetris.Action
}

// RandomPolicy picks uniformly over the action alphabet. Useful as a rollout
// baseline and for exercising the engine in headless runs.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a seeded random policy.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Select returns a uniformly random action.
func (p *RandomPolicy) Select(_ []byte, _ tetris.GameState) tetris.Action {
	return tetris.Action(p.rng.Intn(tetris.NumActions))
}
