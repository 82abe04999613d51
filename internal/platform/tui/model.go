package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/storage"
	"github.com/vovakirdan/tetris-gym/internal/tetris"
)

// Model is the Bubble Tea model that drives one engine interactively. Keys
// apply their action immediately; gravity ticks arrive on a timer.
type Model struct {
	game       *tetris.Game
	keys       *KeyMapper
	store      *storage.Store
	cfg        config.Config
	state      tetris.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model around a fresh engine.
func NewModel(cfg config.Config, seed int64, store *storage.Store) Model {
	// Use time-based seed if not specified
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := tetris.New(cfg.EngineConfig(seed))
	return Model{
		game:  game,
		keys:  NewKeyMapper(),
		store: store,
		cfg:   cfg,
		state: game.State(),
	}
}

// Init starts the gravity loop.
func (m Model) Init() tea.Cmd {
	return gravityCmd(m.cfg.Gravity.TicksPerSecond)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case GravityMsg:
		return m.handleGravity()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keys.IsRestart(msg) && m.state.Lost {
		m.game.Reset()
		m.state = m.game.State()
		m.scoreSaved = false
		return m, nil
	}

	if action, ok := m.keys.MapKey(msg); ok {
		m.state = m.game.Step(action)
		m.saveScoreOnce()
	}

	return m, nil
}

// handleGravity applies one gravity tick and reschedules the timer.
func (m Model) handleGravity() (tea.Model, tea.Cmd) {
	if !m.state.Lost {
		m.state = m.game.Step(tetris.ActionTick)
		m.saveScoreOnce()
	}
	return m, gravityCmd(m.cfg.Gravity.TicksPerSecond)
}

// saveScoreOnce records the score on game over, once per game.
func (m *Model) saveScoreOnce() {
	if !m.state.Lost || m.scoreSaved {
		return
	}
	if m.store != nil && m.state.Score > 0 {
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveScore(int(m.state.Score))
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderGame(m.game, m.game.Lines())
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.Config, seed int64, store *storage.Store) error {
	model := NewModel(cfg, seed, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
