// Package cli implements the VegiRise command-line interface using Cobra.
// Each subcommand maps to one tracker operation (add, wake, status, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vegirise",
	Short: "VegiRise: track vegetables and wake-ups, earn XP",
	Long: `VegiRise is a habit tracker that gamifies vegetable intake and
early rising. Every recorded meal and wake-up earns XP; streaks,
combos and 100 achievements keep the habit going.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
