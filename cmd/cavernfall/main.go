// cavernfall is a debug frontend for the simulation core.
//
// Usage:
//
//	cavernfall play              - Play the loaded room in a window
//	cavernfall simulate          - Run the sim headless and print a digest
//
// Global flags:
//
//	--room <path>   - Room spec YAML (default: the built-in test room)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagRoom string

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("cavernfall failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavernfall",
	Short: "Cavernfall - deterministic side-scroller simulation core",
	Long: `Cavernfall runs the fixed-point gameplay simulation with a thin
debug frontend.

Available commands:
  play       - Open a window and play the loaded room
  simulate   - Run N frames headless and print a state digest

Examples:
  cavernfall play
  cavernfall play --room rooms/test_room.yaml --watch
  cavernfall simulate --frames 3600`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoom, "room", "", "Room spec YAML (empty = built-in test room)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}
