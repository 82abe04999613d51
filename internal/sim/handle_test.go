package sim

import (
	"bytes"
	"testing"
)

func TestCreateRejectsZeroDimensions(t *testing.T) {
	if h := Create(0, 20); h != InvalidHandle {
		t.Errorf("Expected InvalidHandle for zero width, got %d", h)
	}
	if h := Create(10, 0); h != InvalidHandle {
		t.Errorf("Expected InvalidHandle for zero height, got %d", h)
	}
}

func TestHandleLifecycle(t *testing.T) {
	h := Create(10, 20)
	if h == InvalidHandle {
		t.Fatal("Create() returned InvalidHandle")
	}
	defer Destroy(h)

	if !Alive(h) {
		t.Fatal("Fresh handle should be alive")
	}

	state := GameState(h)
	if state.Width != 10 || state.Height != 20 {
		t.Errorf("Expected 10x20, got %dx%d", state.Width, state.Height)
	}
	if state.Score != 0 || state.Lost {
		t.Errorf("Expected fresh state, got score=%d lost=%v", state.Score, state.Lost)
	}

	buf := make([]byte, 200)
	if err := CopyBoard(h, buf); err != nil {
		t.Fatalf("CopyBoard() failed: %v", err)
	}

	after := Step(h, 4) // gravity tick
	if after.Width != 10 || after.Height != 20 {
		t.Error("Step should return the live snapshot")
	}

	Reset(h)
	if got := GameState(h); got.Score != 0 || got.Lost {
		t.Errorf("Expected reset state, got score=%d lost=%v", got.Score, got.Lost)
	}
}

func TestDestroyedHandleIsInert(t *testing.T) {
	h := Create(10, 20)
	Destroy(h)

	if Alive(h) {
		t.Error("Destroyed handle should not be alive")
	}
	if got := Step(h, 4); got != (GameState(InvalidHandle)) {
		t.Errorf("Expected zero snapshot from dead handle, got %+v", got)
	}
	if err := CopyBoard(h, make([]byte, 200)); err == nil {
		t.Error("Expected error copying board from dead handle")
	}

	// Double destroy must not corrupt the table
	Destroy(h)
}

func TestCopyBoardSizeMismatch(t *testing.T) {
	h := Create(10, 20)
	defer Destroy(h)

	if err := CopyBoard(h, make([]byte, 10)); err == nil {
		t.Error("Expected error for undersized buffer")
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	h1 := Create(10, 20)
	h2 := Create(10, 20)
	defer Destroy(h1)
	defer Destroy(h2)

	if h1 == h2 {
		t.Fatal("Two live instances share a handle")
	}

	before := make([]byte, 200)
	if err := CopyBoard(h2, before); err != nil {
		t.Fatalf("CopyBoard() failed: %v", err)
	}

	// Drive the first instance; the second must not move
	for i := 0; i < 50; i++ {
		Step(h1, 4)
	}

	after := make([]byte, 200)
	if err := CopyBoard(h2, after); err != nil {
		t.Fatalf("CopyBoard() failed: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("Stepping one instance changed another instance's board")
	}
	if got := GameState(h2); got.Score != 0 || got.Lost {
		t.Errorf("Second instance state changed: %+v", got)
	}
}
