package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move paddle left
	ActionRight          // Right arrow, D, L - move paddle right
	ActionUp             // Menu cursor up
	ActionDown           // Menu cursor down
	ActionConfirm        // Enter - confirm menu selection
	ActionPause          // P - pause/unpause ticking
	ActionRestart        // R - start a fresh game
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// TickHandler is implemented by anything a fixed-period timer can drive.
// Tick is never called concurrently with itself.
type TickHandler interface {
	Tick() StepResult
}

// KeyHandler receives discrete key events as they arrive, between ticks.
// It returns true when the event changed something the renderer must redraw.
type KeyHandler interface {
	HandleKey(a Action) bool
}
