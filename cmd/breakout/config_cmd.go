package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	configPath    string
	configVariant string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration",
}

var configPrintCmd = &cobra.Command{
	Use:   "print [variant]",
	Short: "Print the resolved configuration of a variant",
	Long: `Print the configuration a variant would run with, after the search
path (--config, ~/.breakout/configs, ./configs, embedded defaults).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		v, err := config.ParseVariant(name)
		if err != nil {
			return err
		}
		cfg, err := config.Load(configPath, v)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := checkVariant(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.Load(args[0], v)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (variant %s, %dx%d arena, %d bricks)\n",
			args[0], cfg.Variant, cfg.Arena.Width, cfg.Arena.Height, cfg.Bricks.Rows*cfg.Bricks.PerRow)
		return nil
	},
}

func init() {
	configPrintCmd.Flags().StringVar(&configPath, "config", "", "Path to custom config YAML")
	configCheckCmd.Flags().StringVar(&configVariant, "variant", "", "Variant the file must match (default: the variant it names)")

	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configCheckCmd)
}

// checkVariant picks --variant when set, otherwise the variant the file names.
func checkVariant(path string) (config.Variant, error) {
	if configVariant != "" {
		return config.ParseVariant(configVariant)
	}
	return config.VariantOf(path)
}
