// pong is a terminal Pong game driven by a fixed-step simulation.
//
// Usage:
//
//	pong play              - Play against the opponent in this terminal
//	pong serve             - Start SSH server for remote play
//	pong sim               - Run a headless match and print a report
//	pong config            - Print the effective configuration
//	pong opponents         - List available opponent controllers
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for sim scripted input
//	--config <path>        - Load match config from a YAML file
//	--difficulty <preset>  - easy, normal or hard
//	--opponent <id>        - Override the configured opponent controller
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"

	// Register the built-in opponent controllers
	_ "github.com/vovakirdan/tui-pong/internal/sim"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagOpponent   string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - a paddle game for your terminal",
	Long: `Pong runs a fixed-step paddle-and-ball simulation in your terminal.

Available commands:
  play       - Play a match locally
  serve      - Start SSH server for remote play
  sim        - Run a headless match
  config     - Print the effective configuration
  opponents  - List opponent controllers

Examples:
  pong play
  pong play --difficulty hard --opponent tracking
  pong serve --ssh :2222
  pong sim --ticks 3600 --seed 7 --format yaml
  pong config > configs/pong.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for sim scripted input (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagOpponent, "opponent", "", "Opponent controller ID (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(opponentsCmd)
}

// newLogger builds the command logger. Output goes to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the match config from file, difficulty and flags.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPongPreset(&cfg, preset)

	if flagOpponent != "" {
		cfg.Opponent.Controller = flagOpponent
	}
	if !registry.Exists(cfg.Opponent.Controller) {
		return cfg, fmt.Errorf("%w: unknown opponent %q (run 'pong opponents')",
			config.ErrInvalidConfig, cfg.Opponent.Controller)
	}
	return cfg, nil
}

// newGame creates a match from a resolved config.
func newGame(cfg config.PongConfig, logger *log.Logger) (*pong.Game, error) {
	opponent, err := registry.Create(cfg.Opponent.Controller, cfg.Opponent.Speed)
	if err != nil {
		return nil, err
	}
	return pong.New(cfg, opponent, logger), nil
}
