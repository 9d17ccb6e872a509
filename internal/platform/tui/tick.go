// Package tui hosts a game in the terminal with Bubble Tea. It owns the tick
// timer, maps keys to actions and turns the game's screen into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one TickMsg after period.
func tickCmd(period time.Duration) tea.Cmd {
	if period <= 0 {
		period = time.Millisecond
	}
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
