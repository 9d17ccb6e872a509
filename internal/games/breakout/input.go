package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Direction is a paddle move request.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// DirectionForAction maps a host action to a paddle direction.
func DirectionForAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return 0, false
	}
}

// InputController turns discrete key events into paddle displacement.
// The paddle is never clamped and may leave the arena.
type InputController struct {
	Step   int    // Pixels per key event
	Redraw func() // Called after every move, may be nil
}

// NewInputController creates a controller moving the paddle step pixels per event.
func NewInputController(step int) InputController {
	return InputController{Step: step}
}

// OnKey moves the paddle one step and signals the redraw hook.
func (c InputController) OnKey(s *GameState, d Direction) {
	switch d {
	case Left:
		s.Paddle.X -= c.Step
	case Right:
		s.Paddle.X += c.Step
	}
	if c.Redraw != nil {
		c.Redraw()
	}
}
