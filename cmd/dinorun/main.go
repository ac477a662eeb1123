// dinorun is a terminal dino runner: jump the cacti, duck nothing, outlast
// the speed-ups.
//
// Usage:
//
//	dinorun play             - Play in the current terminal
//	dinorun serve            - Start SSH server for remote play
//	dinorun scores           - Show the run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.dinorun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinorun",
	Short: "Dino Run - an endless runner in your terminal",
	Long: `Dino Run is a terminal rendition of the classic no-internet runner.
Jump over cacti, dodge birds, and survive the speed-ups.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the run history

Examples:
  dinorun play
  dinorun play --seed 42
  dinorun serve --ssh :2222
  dinorun scores --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dinorun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
