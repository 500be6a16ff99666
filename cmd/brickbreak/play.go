package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/J     - Stop the paddle
  Space/Enter  - Start (restart after game over)
  R            - Reset
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  brickbreak play
  brickbreak play --config ./my-breakout.yaml
  brickbreak play --log-file ./brickbreak.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is owned by the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "play")
	if err != nil {
		fail("%v", err)
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.Cols, rt.Rows = w, h
	}
	rt.Seed = seed()

	if err := tui.Run(cfg, rt, logger); err != nil {
		fail("%v", err)
	}
}
