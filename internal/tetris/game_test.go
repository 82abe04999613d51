package tetris

import (
	"bytes"
	"testing"
)

func testConfig(width, height int, seed int64) Config {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	return cfg
}

func readBoard(t *testing.T, g *Game) []byte {
	t.Helper()
	state := g.State()
	buf := make([]byte, int(state.Width)*int(state.Height))
	if err := g.ReadBoard(buf); err != nil {
		t.Fatalf("ReadBoard() failed: %v", err)
	}
	return buf
}

func TestResetInitialState(t *testing.T) {
	g := New(testConfig(10, 20, 1))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Expected score 0, got %d", state.Score)
	}
	if state.Lost {
		t.Error("Expected lost=false after reset")
	}
	if state.Width != 10 || state.Height != 20 {
		t.Errorf("Expected 10x20, got %dx%d", state.Width, state.Height)
	}

	// Locked terrain is empty; the observation shows only the fresh spawn.
	locked := make([]byte, 200)
	g.Board().CopyTo(locked)
	for i, b := range locked {
		if b != 0 {
			t.Fatalf("Expected empty terrain after reset, byte %d = %d", i, b)
		}
	}

	obs := readBoard(t, g)
	ones := 0
	for i, b := range obs {
		if b == 1 {
			ones++
			if i/10 >= shapeBox {
				t.Errorf("Spawned piece cell at row %d, expected top rows only", i/10)
			}
		}
	}
	if ones != cellsPerPiece {
		t.Errorf("Expected %d active cells in observation, got %d", cellsPerPiece, ones)
	}
}

func TestReadBoardSizeMismatch(t *testing.T) {
	g := New(testConfig(10, 20, 1))
	if err := g.ReadBoard(make([]byte, 50)); err == nil {
		t.Error("Expected error for undersized buffer")
	}
}

func TestBlockedMoveIsNoOp(t *testing.T) {
	g := New(testConfig(10, 20, 2))

	// Push the piece into the left wall
	for i := 0; i < 10; i++ {
		g.Step(ActionLeft)
	}

	before := g.Snapshot()
	obsBefore := readBoard(t, g)

	g.Step(ActionLeft)

	if got := g.Snapshot(); got != before {
		t.Errorf("Blocked move changed state: %+v vs %+v", got, before)
	}
	if !bytes.Equal(readBoard(t, g), obsBefore) {
		t.Error("Blocked move changed the observation bytes")
	}
}

func TestTickDrivesPieceToLock(t *testing.T) {
	g := New(testConfig(10, 20, 3))

	locked := false
	for i := 0; i < 25; i++ {
		g.Step(ActionTick)
		if g.board.OccupiedCount() > 0 {
			locked = true
			break
		}
	}
	if !locked {
		t.Fatal("Piece never locked under repeated gravity ticks")
	}

	if got := g.board.OccupiedCount(); got != cellsPerPiece {
		t.Errorf("Expected %d locked cells, got %d", cellsPerPiece, got)
	}

	// The piece fell all the way: its footprint rests on the bottom row,
	// not floating above a gap it fell through.
	bottomRow := false
	for x := 0; x < 10; x++ {
		if g.board.IsOccupied(x, 19) {
			bottomRow = true
		}
	}
	if !bottomRow {
		t.Error("Locked piece does not touch the bottom row")
	}

	if snap := g.Snapshot(); !snap.HasPiece {
		t.Error("Expected a fresh spawn after the lock")
	}
}

func TestHardDropLocksSameStep(t *testing.T) {
	g := New(testConfig(10, 20, 4))

	state := g.Step(ActionHardDrop)

	if got := g.board.OccupiedCount(); got != cellsPerPiece {
		t.Errorf("Hard drop must lock within the same step, %d cells locked", got)
	}
	if state.Lost {
		t.Error("Hard drop on an empty board should not lose")
	}
	if snap := g.Snapshot(); !snap.HasPiece {
		t.Error("Expected a fresh spawn after hard drop")
	}
}

func TestLostIsTerminal(t *testing.T) {
	g := New(testConfig(4, 6, 5))

	// Stack hard drops until the spawn region fills up
	for i := 0; i < 20 && !g.State().Lost; i++ {
		g.Step(ActionHardDrop)
	}
	if !g.State().Lost {
		t.Fatal("Expected the game to be lost after stacking a 4x6 board")
	}

	frozen := g.Snapshot()
	if frozen.HasPiece {
		t.Error("No active piece may survive the transition to lost")
	}
	obs := readBoard(t, g)

	for _, a := range []Action{ActionLeft, ActionRight, ActionRotate, ActionHardDrop, ActionTick, Action(99)} {
		state := g.Step(a)
		if !state.Lost {
			t.Errorf("Action %v flipped lost back to false", a)
		}
		if state.Score != frozen.Score {
			t.Errorf("Action %v changed the frozen score: %d vs %d", a, state.Score, frozen.Score)
		}
	}

	if got := g.Snapshot(); got != frozen {
		t.Errorf("Stepping a lost game changed state: %+v vs %+v", got, frozen)
	}
	if !bytes.Equal(readBoard(t, g), obs) {
		t.Error("Stepping a lost game changed the observation bytes")
	}

	// Reset is the only way out
	g.Reset()
	if g.State().Lost {
		t.Error("Reset should clear the lost state")
	}
}

func TestLineClearScoring(t *testing.T) {
	g := New(testConfig(4, 6, 6))

	// Engineer a bottom row that the O piece completes on landing
	g.board.Reset()
	g.board.Lock([]Point{{0, 5}, {3, 5}})
	g.piece = &Piece{Kind: KindO, X: 0, Y: 0}

	state := g.Step(ActionHardDrop)

	if state.Score != g.cfg.LineScores[1] {
		t.Errorf("Expected score %d for a single line, got %d", g.cfg.LineScores[1], state.Score)
	}
	if g.Lines() != 1 {
		t.Errorf("Expected 1 cleared line, got %d", g.Lines())
	}

	// The O's top half shifts down into the cleared row
	if !g.board.IsOccupied(1, 5) || !g.board.IsOccupied(2, 5) {
		t.Error("Cells above the cleared row should have shifted down")
	}
	if g.board.IsOccupied(0, 5) || g.board.IsOccupied(3, 5) {
		t.Error("Cleared row cells should be gone")
	}
}

func TestUnknownActionIsNoOp(t *testing.T) {
	g := New(testConfig(10, 20, 7))

	before := g.Snapshot()
	state := g.Step(Action(42))

	if state != g.State() {
		t.Error("Step must return the current snapshot")
	}
	if got := g.Snapshot(); got != before {
		t.Errorf("Unknown action changed state: %+v vs %+v", got, before)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := New(testConfig(6, 10, 8))

	prev := int32(0)
	actions := []Action{ActionLeft, ActionRight, ActionRotate, ActionTick, ActionTick}
	for i := 0; i < 500; i++ {
		state := g.Step(actions[i%len(actions)])
		if state.Score < prev {
			t.Fatalf("Score decreased from %d to %d at step %d", prev, state.Score, i)
		}
		prev = state.Score
		if state.Lost {
			break
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed fed the same actions stay in lockstep
	g1 := New(testConfig(10, 20, 12345))
	g2 := New(testConfig(10, 20, 12345))

	actions := []Action{ActionLeft, ActionRotate, ActionRight, ActionTick, ActionHardDrop}
	for i := 0; i < 300; i++ {
		a := actions[i%len(actions)]
		g1.Step(a)
		g2.Step(a)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("Snapshot mismatch: %+v vs %+v", s1, s2)
	}
}
