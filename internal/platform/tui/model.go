package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid2048/internal/config"
	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/puzzle"
)

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

// Model is the Bubble Tea model for the puzzle. It is event driven: there is
// no tick, and the view is only re-rendered after an accepted move or resize.
type Model struct {
	game     *puzzle.Game
	screen   *core.Screen
	renderer *Renderer
	keys     *KeyMapper
	help     help.Model

	view     string
	quitting bool
}

// NewModel creates a model and starts a fresh game on it.
func NewModel(game *puzzle.Game, theme config.Theme, cfg core.RuntimeConfig) Model {
	game.Reset(cfg)

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		renderer: NewRenderer(nil, theme),
		keys:     NewKeyMapper(DefaultKeyMap()),
		help:     help.New(),
	}
	m.redraw()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey feeds one key press to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	m.keys.MapKeyToFrame(msg, &frame)
	if frame.Empty() {
		return m, nil
	}

	result := m.game.Step(frame)
	if result.State.Stopped {
		m.quitting = true
		return m, tea.Quit
	}
	if result.Redraw {
		m.redraw()
	}
	return m, nil
}

// handleResize re-lays out the board. The game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

func (m *Model) redraw() {
	m.game.Render(m.screen)
	m.view = m.renderer.RenderScreen(m.screen)
}

// View returns the cached frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view + "\n" + m.help.View(m.keys.Keys())
}

// Game returns the game driven by this model.
func (m Model) Game() *puzzle.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *puzzle.Game, theme config.Theme, cfg core.RuntimeConfig) error {
	model := NewModel(game, theme, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
