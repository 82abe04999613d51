package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

var (
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))
	hudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderGame draws the board with the falling piece highlighted, plus a HUD
// line. Each cell is two characters wide so the grid looks roughly square.
func RenderGame(g *tetris.Game, lines int) string {
	state := g.State()
	width := int(state.Width)
	height := int(state.Height)

	locked := make([]byte, width*height)
	g.Board().CopyTo(locked)

	active := make(map[tetris.Point]bool, 4)
	for _, c := range g.ActiveCells() {
		active[c] = true
	}

	var sb strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			switch {
			case active[tetris.Point{X: x, Y: y}]:
				sb.WriteString(activeStyle.Render("██"))
			case locked[y*width+x] == 1:
				sb.WriteString(lockedStyle.Render("██"))
			default:
				sb.WriteString("  ")
			}
		}
	}

	hud := fmt.Sprintf("Score: %d  Lines: %d", state.Score, lines)
	status := hudStyle.Render("←/→ move  ↑ rotate  ↓ drop  space hard drop  q quit")
	if state.Lost {
		status = lostStyle.Render("Game over") + hudStyle.Render("  —  press r to restart")
	}

	return frameStyle.Render(sb.String()) + "\n" + hud + "\n" + status
}
