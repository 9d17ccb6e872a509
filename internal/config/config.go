// Package config provides YAML-based configuration for the breakout core:
// every fixed constant of the arena, paddle, bricks, ball and timing, with
// embedded per-variant defaults.
package config

import (
	"fmt"
	"time"
)

// Variant names a configuration preset of the same core.
type Variant string

const (
	// VariantClassic destroys bricks, keeps score and bounces the ball off the paddle.
	VariantClassic Variant = "classic"
	// VariantDemo is the ball-and-paddle demo: decorative bricks, no scoring,
	// the paddle does not deflect the ball.
	VariantDemo Variant = "demo"
)

// Variants returns all known variants in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantDemo}
}

// ParseVariant converts a name to a Variant. An empty name selects classic.
func ParseVariant(name string) (Variant, error) {
	switch Variant(name) {
	case "", VariantClassic:
		return VariantClassic, nil
	case VariantDemo:
		return VariantDemo, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want classic or demo)", name)
	}
}

// BreakoutConfig contains every tunable constant of the game.
type BreakoutConfig struct {
	Variant Variant `yaml:"variant"`
	Arena   Arena   `yaml:"arena"`
	Paddle  Paddle  `yaml:"paddle"`
	Bricks  Bricks  `yaml:"bricks"`
	Ball    Ball    `yaml:"ball"`
	Rules   Rules   `yaml:"rules"`
	Timing  Timing  `yaml:"timing"`
}

// Arena is the play area size in pixels.
type Arena struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Paddle defines paddle geometry and how far one key press moves it.
type Paddle struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	YOffset int `yaml:"y_offset"` // Gap between paddle bottom and arena bottom
	Step    int `yaml:"step"`     // Pixels moved per key event
}

// Bricks defines the brick grid layout.
type Bricks struct {
	Rows       int `yaml:"rows"`
	PerRow     int `yaml:"per_row"`
	Separation int `yaml:"separation"`
	Height     int `yaml:"height"`
	YOffset    int `yaml:"y_offset"` // Top of the first brick row
}

// Ball defines ball size and launch velocity.
type Ball struct {
	Radius int `yaml:"radius"`
	DX     int `yaml:"dx"`
	DY     int `yaml:"dy"`
}

// Rules toggles the interactions that differ between variants.
type Rules struct {
	PaddleCollision bool `yaml:"paddle_collision"`
	BrickCollision  bool `yaml:"brick_collision"`
}

// Timing defines the fixed tick interval.
type Timing struct {
	TickPeriodMS int `yaml:"tick_period_ms"`
}

// TickPeriod returns the tick interval as a duration.
func (t Timing) TickPeriod() time.Duration {
	return time.Duration(t.TickPeriodMS) * time.Millisecond
}

// PaddleY returns the fixed y of the paddle's top edge.
func (c BreakoutConfig) PaddleY() int {
	return c.Arena.Height - c.Paddle.YOffset - c.Paddle.Height
}

// BrickWidth returns the width of one brick derived from arena width and separation.
func (c BreakoutConfig) BrickWidth() int {
	if c.Bricks.PerRow <= 0 {
		return 0
	}
	return (c.Arena.Width - (c.Bricks.PerRow-1)*c.Bricks.Separation) / c.Bricks.PerRow
}
