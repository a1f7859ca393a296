// lanerush is a lane-dodging endless runner for the terminal.
//
// Usage:
//
//	lanerush play            - Play a run
//	lanerush scores          - Show high scores
//	lanerush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.lanerush/scores.db)
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
	Use:   "lanerush",
	Short: "Lane Rush - dodge traffic in your terminal",
	Long: `Lane Rush is a terminal endless runner: shift your car between lanes,
dodge the oncoming traffic, grab coins, and survive the speed ramp.

Available commands:
  play     - Start a run
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  lanerush play
  lanerush play --difficulty hard
  lanerush scores
  lanerush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerush/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
