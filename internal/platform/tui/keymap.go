package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// KeyMapper translates Bubble Tea key messages to engine actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine action. ok is false when the
// key is not bound to an action (it may still be a quit or restart request).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action tetris.Action, ok bool) {
	switch msg.String() {
	case "left", "a", "h":
		return tetris.ActionLeft, true
	case "right", "d", "l":
		return tetris.ActionRight, true
	case "up", "w", "x":
		return tetris.ActionRotate, true
	case " ":
		return tetris.ActionHardDrop, true
	case "down", "s", "j":
		return tetris.ActionTick, true
	}
	return 0, false
}

// IsQuit reports whether the key is a quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}

// IsRestart reports whether the key is a restart request.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}
