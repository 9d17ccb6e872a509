package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing Breakout. The variant is classic (default) or demo.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  P/Esc       - Pause
  R           - Restart
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  breakout play
  breakout play demo
  breakout play --config ./my-breakout.yaml
  breakout play --step 20 --tick 8ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd, true)
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := playFlags.newGame(playFlags.variantName(args))
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	game.SetLogger(logger)
	traceMoves(game, logger)

	cfg := game.Config()
	if err := tui.Run(game, runtimeConfig(cfg.Timing.TickPeriod()), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// traceMoves logs every paddle move at debug level. The hook runs under the
// game lock, so it only counts and never reads the game back.
func traceMoves(game *breakout.Game, logger *log.Logger) {
	moves := 0
	game.SetRedrawHook(func() {
		moves++
		logger.Debug("paddle moved", "moves", moves)
	})
}
