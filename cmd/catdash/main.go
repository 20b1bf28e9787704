// catdash is an endless-runner game played in the terminal.
//
// Usage:
//
//	catdash play             - Play a run
//	catdash scores           - Show the best runs
//	catdash serve            - Start SSH server for remote play
//	catdash config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.catdash/runs.db)
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
	Use:   "catdash",
	Short: "Cat Dash - an endless runner in your terminal",
	Long: `Cat Dash is a terminal endless runner: jump, slide, and shoot your
way past obstacles while the run gets faster.

Available commands:
  play     - Play a run
  scores   - View the best runs
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  catdash play
  catdash play --difficulty hard
  catdash scores
  catdash serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catdash/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
