package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match against the opponent controller.

Controls:
  Up/W/K     - Move paddle up
  Down/S/J   - Move paddle down
  P/Esc      - Pause
  R          - Restart the match
  Q/Ctrl+C   - Quit

A key press holds its direction for a short moment; keep the key
down (auto-repeat) to keep moving.

Difficulty options:
  easy   - Opponent at 75% speed
  normal - Configured opponent speed
  hard   - Opponent at 150% speed

Examples:
  pong play
  pong play --difficulty easy
  pong play --opponent tracking
  pong play --config ./my-pong.yaml --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := newGame(cfg, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	logger.Info("match started", "opponent", cfg.Opponent.Controller, "speed", cfg.Opponent.Speed)
	runErr := tui.Run(game, runtime)
	logger.Info("match ended", "ticks", game.State().Tick, "rounds", game.State().Rounds)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
