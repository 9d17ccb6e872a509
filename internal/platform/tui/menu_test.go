package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	view := m.View()
	for _, title := range []string{"Breakout", "Breakout (Demo)"} {
		if !strings.Contains(view, title) {
			t.Errorf("View() should list %q", title)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("enter should close the menu")
	}
	if m.Selected() == nil || m.Selected().ID != breakout.IDDemo {
		t.Errorf("Selected() = %+v, expected %q", m.Selected(), breakout.IDDemo)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = menuUpdate(t, m, runeKey('q'))

	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should leave the menu without a selection")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q, expected unchanged text", got)
	}
}
