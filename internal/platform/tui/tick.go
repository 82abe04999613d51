// Package tui provides the Bubble Tea integration for interactive play.
// It handles the terminal UI loop, key-to-action mapping and gravity timing;
// the engine itself stays input-agnostic.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent to apply one gravity tick to the engine.
type GravityMsg time.Time

// gravityCmd returns a Bubble Tea command that sends gravity messages at the
// specified rate.
func gravityCmd(ticksPerSecond int) tea.Cmd {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 2
	}
	interval := time.Second / time.Duration(ticksPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GravityMsg(t)
	})
}
