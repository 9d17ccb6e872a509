// breakout plays single-screen Breakout in the terminal.
//
// Usage:
//
//	breakout play [variant]          - Play classic (default) or demo
//	breakout menu                    - Pick a variant interactively
//	breakout list                    - List available variants
//	breakout sim                     - Run the simulation without a terminal UI
//	breakout config print [variant]  - Print the resolved configuration
//	breakout config check <path>     - Validate a configuration file
//
// Global flags:
//
//	--log-file <path>   - Write logs to a rotating file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagLogFile  string
	flagLogLevel string

	// runID tags every log line of one process.
	runID = uuid.NewString()[:8]
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the bricks",
	Long: `Breakout is a single-screen brick breaker for the terminal.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all variants
  sim      - Run the simulation headless
  config   - Print or check configuration

Examples:
  breakout play
  breakout play demo
  breakout play --step 20 --tick 8ms
  breakout sim --ticks 20000 --dump
  breakout config check ./my-breakout.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file it writes to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	logger, err := logging.New(logging.Options{
		Path:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: "breakout",
		Writer: w,
	})
	if err != nil {
		return nil, err
	}
	return logger.With("run", runID), nil
}
