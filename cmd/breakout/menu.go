package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuFlags gameFlags

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu, then play it",
	Long: `Start with an interactive variant picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  breakout menu
  breakout menu --tick 8ms`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuFlags.register(menuCmd, false)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	result, err := tui.RunMenu(runtimeConfig(0))
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	if result.Quit {
		return nil
	}

	v, ok := breakout.VariantForID(result.GameID)
	if !ok {
		return fmt.Errorf("unknown game %q", result.GameID)
	}
	game, err := menuFlags.newGame(string(v))
	if err != nil {
		return err
	}
	game.SetLogger(logger)
	traceMoves(game, logger)

	cfg := result.Config
	cfg.TickPeriod = game.Config().Timing.TickPeriod()
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
