package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Config files are searched in this order:
  1. --config <path>
  2. ~/.brickbreak/configs/breakout.yaml
  3. ./configs/breakout.yaml
  4. built-in defaults

Files only need the keys they change.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.MarshalBreakout(cfg)
	if err != nil {
		fail("%v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail("%v", err)
	}
}
