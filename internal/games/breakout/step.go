package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Events reports which collisions one tick resolved.
type Events struct {
	PaddleHit  bool
	WallHit    bool // Left or right wall
	CeilingHit bool
	Missed     bool // Ball reached the bottom and was put back at the center

	// BrickRow and BrickCol locate the destroyed brick, or are -1.
	BrickRow int
	BrickCol int
}

// BrickDestroyed reports whether a brick died this tick.
func (e Events) BrickDestroyed() bool {
	return e.BrickRow >= 0
}

// Any reports whether any collision happened.
func (e Events) Any() bool {
	return e.PaddleHit || e.WallHit || e.CeilingHit || e.Missed || e.BrickDestroyed()
}

// Advance moves the simulation forward by one tick, mutating s in place.
//
// The order is fixed: integrate, paddle, side walls, top wall, bottom wall,
// bricks. Every check looks at the position after integration only, so a
// fast enough ball can pass through the paddle or a brick between two ticks.
func Advance(s *GameState, l Layout, rules config.Rules) Events {
	ev := Events{BrickRow: -1, BrickCol: -1}
	b := &s.Ball
	size := l.BallSize()

	b.X += b.DX
	b.Y += b.DY

	if rules.PaddleCollision {
		// No check of the paddle's bottom edge: a ball that got below the
		// paddle top while overlapping it is lifted back on top.
		if b.Y+size >= l.PaddleY && core.SpansTouch(b.X, b.X+size, s.Paddle.X, s.Paddle.X+l.PaddleW) {
			b.DY = -b.DY
			b.Y = l.PaddleY - size
			ev.PaddleHit = true
		}
	}

	// Walls reflect without clamping; the ball may overlap a wall for one frame.
	if b.X <= 0 || b.X+size >= l.ArenaW {
		b.DX = -b.DX
		ev.WallHit = true
	}

	if b.Y <= 0 {
		b.DY = -b.DY
		ev.CeilingHit = true
	}

	if b.Y+size >= l.ArenaH {
		b.X, b.Y = l.Center()
		b.DY = -b.DY
		ev.Missed = true
	}

	if rules.BrickCollision {
		if row, col, ok := firstHitBrick(s, l); ok {
			s.Bricks.Kill(row, col)
			b.DY = -b.DY
			s.Score++
			ev.BrickRow, ev.BrickCol = row, col
		}
	}

	return ev
}

// firstHitBrick scans row-major and returns the first alive brick touching
// the ball. Only one brick can be destroyed per tick.
func firstHitBrick(s *GameState, l Layout) (row, col int, ok bool) {
	ball := l.BallRect(s.Ball)
	for r := range s.Bricks.Rows() {
		for c := range s.Bricks.Cols() {
			if !s.Bricks.Alive(r, c) {
				continue
			}
			if ball.Intersects(l.BrickRect(r, c)) {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}
