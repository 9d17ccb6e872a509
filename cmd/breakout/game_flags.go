package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// gameFlags are the configuration overrides shared by play, menu and sim.
type gameFlags struct {
	variant string
	config  string
	step    int
	tick    time.Duration
}

func (f *gameFlags) register(cmd *cobra.Command, withVariant bool) {
	if withVariant {
		cmd.Flags().StringVar(&f.variant, "variant", "", "Variant: classic or demo")
	}
	cmd.Flags().StringVar(&f.config, "config", "", "Path to custom config YAML")
	cmd.Flags().IntVar(&f.step, "step", 0, "Paddle step in pixels (0 = from config)")
	cmd.Flags().DurationVar(&f.tick, "tick", 0, "Tick period, e.g. 5ms (0 = from config)")
}

// variantName picks the positional argument over --variant.
func (f *gameFlags) variantName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return f.variant
}

// loadConfig resolves the configuration of a variant and applies overrides.
func (f *gameFlags) loadConfig(name string) (config.BreakoutConfig, error) {
	v, err := config.ParseVariant(name)
	if err != nil {
		return config.BreakoutConfig{}, err
	}

	cfg, err := config.Load(f.config, v)
	if err != nil {
		return cfg, err
	}

	if f.step != 0 {
		cfg.Paddle.Step = f.step
	}
	if f.tick != 0 {
		if f.tick < time.Millisecond {
			return cfg, fmt.Errorf("tick period %s is shorter than 1ms", f.tick)
		}
		cfg.Timing.TickPeriodMS = int(f.tick / time.Millisecond)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid overrides: %w", err)
	}
	return cfg, nil
}

// newGame builds a game for a variant with the overrides applied.
func (f *gameFlags) newGame(name string) (*breakout.Game, error) {
	cfg, err := f.loadConfig(name)
	if err != nil {
		return nil, err
	}
	return breakout.New(cfg), nil
}

// runtimeConfig sizes the host to the terminal, falling back to 80x24.
func runtimeConfig(period time.Duration) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if period > 0 {
		cfg.TickPeriod = period
	}
	return cfg
}
