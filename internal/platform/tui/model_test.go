package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func newTestModel() (Model, *breakout.Game) {
	g := breakout.New(config.DefaultConfig(config.VariantClassic))
	cfg := core.RuntimeConfig{ScreenW: 42, ScreenH: 33, TickPeriod: 5 * time.Millisecond}
	return NewModel(g, cfg, nil), g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelInitStartsTicking(t *testing.T) {
	m, _ := newTestModel()
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should return the tick command")
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	m, g := newTestModel()

	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("TickMsg should schedule the next tick")
	}
	if g.Status().Tick != 1 {
		t.Errorf("tick = %d, expected 1", g.Status().Tick)
	}
	if m.Paused() {
		t.Error("model should not start paused")
	}
}

func TestModelKeyMovesPaddleImmediately(t *testing.T) {
	m, g := newTestModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if x := g.State().Paddle.X; x != 155 {
		t.Errorf("paddle x after left = %d, expected 155", x)
	}

	update(t, m, runeKey('d'))
	if x := g.State().Paddle.X; x != 170 {
		t.Errorf("paddle x after right = %d, expected 170", x)
	}
	if g.Status().Tick != 0 {
		t.Error("key events must not advance the simulation")
	}
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel()

	m, _ = update(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p should pause")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if g.Status().Tick != 0 {
		t.Error("paused model should not tick the game")
	}
	if cmd == nil {
		t.Error("paused model should keep the tick loop alive")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if x := g.State().Paddle.X; x != 170 {
		t.Errorf("paddle moved while paused: x = %d", x)
	}

	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause banner")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.Paused() {
		t.Error("second p should resume")
	}
}

func TestModelRestart(t *testing.T) {
	m, g := newTestModel()
	for range 10 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	m, _ = update(t, m, runeKey('p'))

	m, _ = update(t, m, runeKey('r'))

	if g.Status().Tick != 0 {
		t.Errorf("tick after restart = %d, expected 0", g.Status().Tick)
	}
	if m.Paused() {
		t.Error("restart should clear pause")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should show the full help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("second ? should hide the full help")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})

	if m.screen.Width() != 60 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 60x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel()
	view := m.View()

	if !strings.Contains(view, "Score: 0") {
		t.Error("View() should contain the score")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should contain the help footer")
	}
}
