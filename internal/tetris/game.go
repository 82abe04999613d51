package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

// Action is one of the five discrete inputs the engine accepts per step.
type Action uint32

const (
	ActionLeft Action = iota
	ActionRight
	ActionRotate
	ActionHardDrop
	ActionTick
)

// NumActions is the size of the action alphabet.
const NumActions = 5

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRotate:
		return "rotate"
	case ActionHardDrop:
		return "hard_drop"
	case ActionTick:
		return "tick"
	default:
		return "unknown"
	}
}

// GameState is the scalar state snapshot returned to hosts after every step.
// It is always returned by value so callers never hold a reference into
// engine-internal memory. Width and Height never change for the lifetime of
// a Game; Score is non-decreasing and frozen once Lost is true.
type GameState struct {
	Score  int32
	Lost   bool
	Width  uint32
	Height uint32
}

// Config contains the parameters a Game is created with.
type Config struct {
	Width  int
	Height int
	// Seed for the piece-selection RNG. 0 means seed from the current time.
	Seed int64
	// LineScores[n] is added to the score when a lock clears n rows at once.
	// Index 0 is unused padding so the table reads naturally.
	LineScores [cellsPerPiece + 1]int32
}

// DefaultConfig returns the standard 10x20 board with one point per cleared
// line, matching the scoring the scripted hosts were tuned against.
func DefaultConfig() Config {
	return Config{
		Width:      10,
		Height:     20,
		LineScores: [cellsPerPiece + 1]int32{0, 1, 2, 3, 4},
	}
}

// Game is the engine state machine. It owns one Board and at most one active
// Piece (absent exactly while lost), and is single-threaded: every call runs
// to completion and the caller serializes access if it ever shares an
// instance across goroutines.
type Game struct {
	cfg   Config
	rng   *rand.Rand
	board *Board
	piece *Piece

	score int32
	lines int
	lost  bool
}

// New creates a game and performs the initial reset, so a fresh instance
// already has an active piece falling. Width and height must be positive;
// that is the caller's contract, enforced at the handle layer.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		board: NewBoard(cfg.Width, cfg.Height),
	}
	g.Reset()
	return g
}

// Reset empties the board, zeroes the score, clears the lost flag and spawns
// a fresh piece. The RNG stream is not re-seeded, so consecutive episodes on
// one instance draw different piece sequences while two instances created
// with the same seed stay in lockstep.
func (g *Game) Reset() {
	g.board.Reset()
	g.score = 0
	g.lines = 0
	g.lost = false
	g.spawn()
}

// Step applies one action and returns the post-transition snapshot. Once the
// game is lost every action is a no-op returning the frozen snapshot, and
// action ids outside the alphabet are ignored the same way.
func (g *Game) Step(a Action) GameState {
	if g.lost {
		return g.State()
	}
	switch a {
	case ActionLeft:
		g.tryMove(-1)
	case ActionRight:
		g.tryMove(1)
	case ActionRotate:
		g.tryRotate()
	case ActionHardDrop:
		g.hardDrop()
	case ActionTick:
		g.tick()
	}
	return g.State()
}

// State returns the current snapshot without mutating anything.
func (g *Game) State() GameState {
	return GameState{
		Score:  g.score,
		Lost:   g.lost,
		Width:  uint32(g.cfg.Width),
		Height: uint32(g.cfg.Height),
	}
}

// Lines returns the total number of rows cleared since the last reset.
func (g *Game) Lines() int {
	return g.lines
}

// ActiveCells returns the absolute cells of the falling piece, or nil when
// the game is lost and no piece exists.
func (g *Game) ActiveCells() []Point {
	if g.piece == nil {
		return nil
	}
	cells := g.piece.Cells()
	return cells[:]
}

// ReadBoard writes the observation into buf: locked cells with the active
// piece superimposed, row-major, one 0/1 byte per cell. buf must hold exactly
// width x height bytes.
func (g *Game) ReadBoard(buf []byte) error {
	want := g.cfg.Width * g.cfg.Height
	if len(buf) != want {
		return fmt.Errorf("tetris: board buffer must be %d bytes, got %d", want, len(buf))
	}
	g.board.CopyTo(buf)
	if g.piece != nil {
		for _, c := range g.piece.Cells() {
			buf[c.Y*g.cfg.Width+c.X] = 1
		}
	}
	return nil
}

// Board exposes the locked grid, primarily for rendering hosts that want to
// distinguish terrain from the falling piece.
func (g *Game) Board() *Board {
	return g.board
}

// fits reports whether every cell of the candidate piece is in range and
// unoccupied. Out-of-range reads count as occupied, so one check covers both.
func (g *Game) fits(p Piece) bool {
	for _, c := range p.Cells() {
		if g.board.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// tryMove translates the piece horizontally, silently ignoring blocked moves.
func (g *Game) tryMove(dx int) {
	candidate := g.piece.Translated(dx, 0)
	if g.fits(candidate) {
		*g.piece = candidate
	}
}

// tryRotate advances the rotation state in place. There is no wall-kick: a
// rotation that would collide is silently dropped.
func (g *Game) tryRotate() {
	candidate := g.piece.Rotated()
	if g.fits(candidate) {
		*g.piece = candidate
	}
}

// tick applies one row of gravity. A blocked tick is a lock event, not a
// no-op.
func (g *Game) tick() {
	candidate := g.piece.Translated(0, 1)
	if g.fits(candidate) {
		*g.piece = candidate
		return
	}
	g.lock()
}

// hardDrop slides the piece to its lowest legal position and locks it within
// the same step.
func (g *Game) hardDrop() {
	for {
		candidate := g.piece.Translated(0, 1)
		if !g.fits(candidate) {
			break
		}
		*g.piece = candidate
	}
	g.lock()
}

// lock commits the active piece into the board, clears full rows, applies the
// scoring table and spawns the next piece. This is the only place the score
// changes, so a single step never produces more than one lock event.
func (g *Game) lock() {
	cells := g.piece.Cells()
	g.board.Lock(cells[:])
	if cleared := g.board.ClearFullRows(); cleared > 0 {
		g.lines += cleared
		g.score += g.cfg.LineScores[cleared]
	}
	g.spawn()
}

// spawn places a uniformly random kind at rotation 0, horizontally centered
// on the top rows. If the fresh piece collides with locked cells the game
// transitions to the lost terminal state and no piece remains visible.
func (g *Game) spawn() {
	p := Piece{
		Kind: Kind(g.rng.Intn(NumKinds)),
		X:    (g.cfg.Width - shapeBox) / 2,
		Y:    0,
	}
	if !g.fits(p) {
		g.piece = nil
		g.lost = true
		return
	}
	g.piece = &p
}
