package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var opponentsCmd = &cobra.Command{
	Use:   "opponents",
	Short: "List all opponent controllers",
	Long:  `Shows a list of all opponent controllers that can drive the left paddle.`,
	Args:  cobra.NoArgs,
	Run:   runOpponents,
}

func runOpponents(_ *cobra.Command, _ []string) {
	controllers := registry.List()

	if len(controllers) == 0 {
		fmt.Println("No opponents available.")
		return
	}

	fmt.Println("Available opponents:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range controllers {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, c := range controllers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pong play --opponent <id>' to pick one.")
}
