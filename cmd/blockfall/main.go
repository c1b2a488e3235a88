// Command blockfall is a terminal host for the falling-block engine: it
// plays an interactive session or replays a recorded one.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "blockfall - a deterministic falling-block engine",
	Long: `blockfall runs the falling-block simulation engine either as an
interactive terminal session or as a deterministic replay of a previously
recorded session.

Examples:
  blockfall play
  blockfall play --seed 12345 --rotation-system dtet
  blockfall replay session.zsr`,
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}
