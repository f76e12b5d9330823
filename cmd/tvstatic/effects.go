package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tvstatic/internal/effects"
)

var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "List all available effects",
	Long:  `Shows a list of all effects that can be passed to --effect.`,
	Args:  cobra.NoArgs,
	Run:   runEffects,
}

func runEffects(cmd *cobra.Command, args []string) {
	list := effects.List()

	fmt.Println("Available effects:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range list {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print effects
	for _, e := range list {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tvstatic --effect <id>' to start with an effect.")
}
