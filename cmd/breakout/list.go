package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered Breakout variant.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printVariants(cmd.OutOrStdout())
	},
}

func printVariants(w io.Writer) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(w, "No variants available.")
		return
	}

	fmt.Fprintln(w, "Available variants:")
	fmt.Fprintln(w)

	maxIDLen := len("Variant")
	for _, g := range games {
		v, _ := breakout.VariantForID(g.ID)
		maxIDLen = max(maxIDLen, len(v))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "Variant", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "-------", "-----")
	for _, g := range games {
		v, _ := breakout.VariantForID(g.ID)
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, v, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'breakout play <variant>' to play.")
}
