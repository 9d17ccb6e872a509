package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Layout is the fixed geometry derived from configuration. Brick rectangles
// are recomputed from (row, col) on every use and never stored.
type Layout struct {
	ArenaW, ArenaH int

	PaddleW, PaddleH int
	PaddleY          int // Top edge of the paddle

	BallRadius int

	BrickW, BrickH int
	BrickSep       int
	BrickOffsetX   int // Centers the row of bricks in the arena
	BrickOffsetY   int
}

// NewLayout computes the layout for a configuration.
func NewLayout(cfg config.BreakoutConfig) Layout {
	cols := cfg.Bricks.PerRow
	brickW := cfg.BrickWidth()
	rowWidth := cols*brickW + (cols-1)*cfg.Bricks.Separation

	return Layout{
		ArenaW:       cfg.Arena.Width,
		ArenaH:       cfg.Arena.Height,
		PaddleW:      cfg.Paddle.Width,
		PaddleH:      cfg.Paddle.Height,
		PaddleY:      cfg.PaddleY(),
		BallRadius:   cfg.Ball.Radius,
		BrickW:       brickW,
		BrickH:       cfg.Bricks.Height,
		BrickSep:     cfg.Bricks.Separation,
		BrickOffsetX: (cfg.Arena.Width - rowWidth) / 2,
		BrickOffsetY: cfg.Bricks.YOffset,
	}
}

// BallSize returns the side of the ball's bounding box.
func (l Layout) BallSize() int {
	return 2 * l.BallRadius
}

// BallRect returns the ball's bounding box.
func (l Layout) BallRect(b Ball) core.Rect {
	return core.NewRect(b.X, b.Y, l.BallSize(), l.BallSize())
}

// PaddleRect returns the paddle rectangle for a paddle x.
func (l Layout) PaddleRect(p Paddle) core.Rect {
	return core.NewRect(p.X, l.PaddleY, l.PaddleW, l.PaddleH)
}

// BrickRect returns the rectangle of the brick at (row, col).
func (l Layout) BrickRect(row, col int) core.Rect {
	x := col*(l.BrickW+l.BrickSep) + l.BrickOffsetX
	y := l.BrickOffsetY + row*(l.BrickH+l.BrickSep)
	return core.NewRect(x, y, l.BrickW, l.BrickH)
}

// Center returns the arena center, where a missed ball is put back.
func (l Layout) Center() (int, int) {
	return l.ArenaW / 2, l.ArenaH / 2
}
