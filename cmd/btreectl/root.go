// Command btreectl is an interactive shell and harness runner over the
// btree package: a REPL for poking at a tree by hand, plus fuzz and stress
// subcommands for driving it automatically.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bset/internal/config"
)

var (
	cfgPath   string
	colorMode string
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "btreectl",
	Short: "Inspect and exercise an in-memory B-tree",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		if colorMode != "" {
			cfg.Color = colorMode
		}
		switch cfg.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a btreectl.yaml config file")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "auto, always, or never (overrides the config file)")
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(fuzzCmd)
	rootCmd.AddCommand(stressCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
