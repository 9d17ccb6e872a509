package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/headless"
)

var (
	simFlags    gameFlags
	simTicks    uint64
	simRealtime bool
	simDump     bool
	simWidth    int
	simHeight   int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a terminal UI",
	Long: `Advance the game without drawing a UI and print the result.

By default the ticks run back to back. With --realtime they are paced
by the configured tick period, and Ctrl+C stops the run early.

Examples:
  breakout sim --ticks 20000
  breakout sim --variant demo --realtime --ticks 2000
  breakout sim --ticks 5000 --dump`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simFlags.register(simCmd, true)
	simCmd.Flags().Uint64Var(&simTicks, "ticks", 10000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&simRealtime, "realtime", false, "Pace ticks with the tick period")
	simCmd.Flags().BoolVar(&simDump, "dump", false, "Print the final snapshot as YAML")
	simCmd.Flags().IntVar(&simWidth, "width", 42, "Width of the printed frame")
	simCmd.Flags().IntVar(&simHeight, "height", 32, "Height of the printed frame")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	game, err := simFlags.newGame(simFlags.variant)
	if err != nil {
		return err
	}
	game.SetLogger(logger)

	cfg := game.Config()
	logger.Info("simulation started", "variant", cfg.Variant, "ticks", simTicks, "realtime", simRealtime)

	if simRealtime {
		if err := runRealtime(cmd.Context(), game, cfg.Timing.TickPeriod()); err != nil {
			return err
		}
	} else {
		headless.RunFor(game, simTicks, nil)
	}

	st := game.Status()
	logger.Info("simulation finished", "tick", st.Tick, "score", st.Score, "bricks_left", st.BricksLeft)

	return printSim(cmd.OutOrStdout(), game)
}

// runRealtime drives the game through the headless loop until simTicks
// ticks have run or the process is interrupted.
func runRealtime(parent context.Context, game *breakout.Game, period time.Duration) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := headless.Run(ctx, period, game, nil, func(res core.StepResult) {
		if res.Status.Tick >= simTicks {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printSim(w io.Writer, game *breakout.Game) error {
	st := game.Status()
	fmt.Fprintf(w, "variant: %s  ticks: %d  score: %d  bricks left: %d\n",
		game.Config().Variant, st.Tick, st.Score, st.BricksLeft)

	screen := core.NewScreen(simWidth, simHeight)
	game.Render(screen)
	fmt.Fprintln(w, screen.String())

	if !simDump {
		return nil
	}
	snap := game.Snapshot()
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	fmt.Fprintln(w, "---")
	_, err = w.Write(data)
	return err
}
