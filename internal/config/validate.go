package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Validate reports every degenerate setting at once. The simulation itself
// never checks its constants, so a config must pass here before it is used.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	if _, err := ParseVariant(string(c.Variant)); err != nil {
		errs = append(errs, err)
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.step", c.Paddle.Step)
	positive("bricks.rows", c.Bricks.Rows)
	positive("bricks.per_row", c.Bricks.PerRow)
	positive("bricks.height", c.Bricks.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("timing.tick_period_ms", c.Timing.TickPeriodMS)

	if c.Paddle.YOffset < 0 {
		errs = append(errs, fmt.Errorf("paddle.y_offset must not be negative, got %d", c.Paddle.YOffset))
	}
	if c.Bricks.Separation < 0 {
		errs = append(errs, fmt.Errorf("bricks.separation must not be negative, got %d", c.Bricks.Separation))
	}
	if c.Bricks.PerRow > 0 && c.BrickWidth() <= 0 {
		errs = append(errs, fmt.Errorf("bricks do not fit: %d per row with separation %d leaves no width in a %d wide arena",
			c.Bricks.PerRow, c.Bricks.Separation, c.Arena.Width))
	}

	diameter := 2 * c.Ball.Radius
	if diameter >= c.Arena.Width || diameter >= c.Arena.Height {
		errs = append(errs, fmt.Errorf("ball diameter %d does not fit the %dx%d arena", diameter, c.Arena.Width, c.Arena.Height))
	}
	if c.Ball.DX == 0 && c.Ball.DY == 0 {
		errs = append(errs, errors.New("ball velocity must not be zero"))
	}
	// Discrete collision only holds the ball inside the walls if one tick
	// cannot carry it across a large part of the arena.
	if core.Abs(c.Ball.DX) >= c.Arena.Width/4 || core.Abs(c.Ball.DY) >= c.Arena.Height/4 {
		errs = append(errs, fmt.Errorf("ball velocity (%d, %d) is too large for the arena", c.Ball.DX, c.Ball.DY))
	}

	if c.PaddleY() <= 0 {
		errs = append(errs, fmt.Errorf("paddle y %d is outside the arena", c.PaddleY()))
	}
	if c.Bricks.Rows > 0 {
		bottom := c.Bricks.YOffset + c.Bricks.Rows*c.Bricks.Height + (c.Bricks.Rows-1)*c.Bricks.Separation
		if c.Bricks.YOffset < 0 || bottom >= c.PaddleY() {
			errs = append(errs, fmt.Errorf("brick grid spans y %d..%d, must lie above the paddle at %d",
				c.Bricks.YOffset, bottom, c.PaddleY()))
		}
	}

	return errors.Join(errs...)
}
