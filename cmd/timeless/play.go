package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/timeless/internal/core"
	"github.com/vovakirdan/timeless/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  A/D, ←/→          - Walk
  Shift+←/→, Shift+A/D - Run
  W/↑/Space         - Jump
  F/J               - Fire
  R                 - Reset the run
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower wall, slower enemy fire, progresses with distance
  normal - Starts at 30% difficulty, progresses with distance
  hard   - Faster wall, faster enemy fire, starts at 70%
  fixed  - No progression

Examples:
  timeless play
  timeless play --difficulty easy
  timeless play --config ./my-timeless.yaml --log-file timeless.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("timeless", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if err := tui.Run(cfg, tuning, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
