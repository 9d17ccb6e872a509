package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Model is the Bubble Tea model that hosts one game.
// Key events reach the game as soon as they arrive; ticks come from tickCmd.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	paused   bool
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultConfig().TickPeriod
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// screenHeight leaves the last terminal row for the help footer.
func screenHeight(termH int) int {
	return max(termH-1, 0)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickPeriod)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.ActionFor(msg); a {
	case core.ActionQuit:
		m.quitting = true
		st := m.game.Status()
		m.logger.Info("game closed", "game", m.game.ID(), "score", st.Score, "ticks", st.Tick)
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)

	case core.ActionRestart:
		m.game.Reset(m.config)
		m.paused = false
		m.logger.Info("game restarted", "game", m.game.ID())

	case core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.game.HandleKey(a)
		}
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.game.Tick()
	}
	return m, tickCmd(m.config.TickPeriod)
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	}

	out := RenderScreen(m.screen)
	if m.paused {
		out += "\n" + pausedStyle.Render("paused") + "  " + m.help.View(m.keys)
	} else {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)
	model.logger.Info("game started", "game", game.ID(), "tick", cfg.TickPeriod)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
