package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	flagTicks  int
	flagEvery  int
	flagHold   int
	flagFormat string
	flagWidth  int
	flagHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match",
	Long: `Run the simulation without a terminal UI, using seeded scripted input
for the player paddle, and print a report.

Formats:
  text     - Summary followed by the final frame
  yaml     - Report as YAML
  msgpack  - Report as MessagePack (binary, to stdout)

The same seed, config and flags always produce the same report hash.

Examples:
  pong sim
  pong sim --ticks 10000 --seed 42
  pong sim --format yaml --every 600
  pong sim --format msgpack > run.msgpack`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagEvery, "every", 0, "Record a snapshot every N ticks (0 = final only)")
	simCmd.Flags().IntVar(&flagHold, "hold", 15, "Ticks each scripted input is held")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, yaml, msgpack")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Frame width for text output")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Frame height for text output")
}

func runSim(_ *cobra.Command, _ []string) {
	switch flagFormat {
	case "text", "yaml", "msgpack":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want text, yaml or msgpack)\n", flagFormat)
		os.Exit(1)
	}
	if flagTicks < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must not be negative")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := newGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW, runtime.ScreenH, runtime.Seed = flagWidth, flagHeight, seed
	game.Reset(runtime)

	report := game.RunHeadless(flagTicks, flagEvery, seed, pong.NewScript(seed, flagHold))

	if err := writeReport(game, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func writeReport(game *pong.Game, report pong.Report) error {
	switch flagFormat {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	case "msgpack":
		if err := msgpack.NewEncoder(os.Stdout).Encode(report); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		return nil
	}

	fmt.Printf("Seed:          %d\n", report.Seed)
	fmt.Printf("Opponent:      %s\n", report.Opponent)
	fmt.Printf("Ticks:         %d\n", report.Ticks)
	fmt.Printf("Rounds:        %d\n", report.Rounds)
	for _, side := range []string{"player", "opponent"} {
		if n := report.Exits[side]; n > 0 {
			fmt.Printf("  exits %-8s %d\n", side, n)
		}
	}
	fmt.Printf("Player hits:   %d\n", report.PlayerHits)
	fmt.Printf("Opponent hits: %d\n", report.OpponentHits)
	fmt.Printf("Wall bounces:  %d\n", report.WallBounces)
	fmt.Printf("Hash:          %016x\n", report.Hash)
	fmt.Println()

	screen := core.NewScreen(flagWidth, flagHeight)
	game.Render(screen)
	fmt.Println(screen.String())
	return nil
}
