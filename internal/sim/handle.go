// Package sim exposes the engine to hosts through opaque handles. A handle
// is an index into a process-wide table of live engine instances, so a stale
// handle can never dangle into freed memory the way a raw pointer would.
//
// The table itself is safe for concurrent use; individual engine instances
// are not. Each instance is exclusively owned by one caller at a time, and
// concurrent calls against the same handle must be serialized externally.
package sim

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// Handle identifies a live engine instance. The zero value is never issued.
type Handle uint64

// InvalidHandle is returned by Create when no engine could be allocated.
const InvalidHandle Handle = 0

var (
	mu     sync.Mutex
	nextID Handle = 1
	games         = make(map[Handle]*tetris.Game)
)

// Create allocates a new engine with the default scoring and a time-based
// seed, and returns its handle. Zero dimensions yield InvalidHandle.
func Create(width, height uint32) Handle {
	if width == 0 || height == 0 {
		return InvalidHandle
	}
	cfg := tetris.DefaultConfig()
	cfg.Width = int(width)
	cfg.Height = int(height)
	return CreateWith(cfg)
}

// CreateWith allocates a new engine from a full config. Zero dimensions yield
// InvalidHandle.
func CreateWith(cfg tetris.Config) Handle {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return InvalidHandle
	}
	game := tetris.New(cfg)

	mu.Lock()
	defer mu.Unlock()
	h := nextID
	nextID++
	games[h] = game
	return h
}

// Destroy releases the engine behind the handle. Destroying an unknown or
// already destroyed handle is a no-op, so the exactly-once discipline is on
// the caller but a double Destroy cannot corrupt the table.
func Destroy(h Handle) {
	mu.Lock()
	defer mu.Unlock()
	delete(games, h)
}

// Alive reports whether the handle refers to a live engine.
func Alive(h Handle) bool {
	mu.Lock()
	defer mu.Unlock()
	_, ok := games[h]
	return ok
}

// Reset re-initializes the engine: empty board, zero score, fresh spawn.
func Reset(h Handle) {
	if g := lookup(h); g != nil {
		g.Reset()
	}
}

// Step applies one action id and returns the post-transition snapshot. A dead
// handle returns the zero snapshot.
func Step(h Handle, action uint32) tetris.GameState {
	g := lookup(h)
	if g == nil {
		return tetris.GameState{}
	}
	return g.Step(tetris.Action(action))
}

// GameState returns the current snapshot without mutating state. A dead
// handle returns the zero snapshot.
func GameState(h Handle) tetris.GameState {
	g := lookup(h)
	if g == nil {
		return tetris.GameState{}
	}
	return g.State()
}

// CopyBoard writes the width x height observation bytes into buf.
func CopyBoard(h Handle, buf []byte) error {
	g := lookup(h)
	if g == nil {
		return fmt.Errorf("sim: handle %d is not alive", h)
	}
	return g.ReadBoard(buf)
}

// lookup resolves a handle under the table lock. The engine call itself runs
// outside the lock: per-instance exclusivity is the caller's contract, and
// holding the table lock through a step would serialize unrelated instances.
func lookup(h Handle) *tetris.Game {
	mu.Lock()
	defer mu.Unlock()
	return games[h]
}
