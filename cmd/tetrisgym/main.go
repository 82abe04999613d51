// tetrisgym is a steppable tetromino simulation for reinforcement-learning
// hosts, with an interactive TUI on top.
//
// Usage:
//
//	tetrisgym play              - Play interactively in the terminal
//	tetrisgym rollout           - Run headless policy episodes
//	tetrisgym serve             - Start SSH server for remote play
//	tetrisgym scores            - Show high scores and episode stats
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible piece sequences
//	--db <path>      - Database path (default: ~/.tetris-gym/scores.db)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrisgym",
	Short: "Steppable tetromino simulation with an RL environment and a TUI",
	Long: `tetrisgym simulates a falling-block stacking game as a deterministic,
steppable state machine. RL drivers step it one discrete action at a time
through the environment API; humans can play the same engine in the terminal.

Available commands:
  play     - Play interactively
  rollout  - Run headless policy episodes and record them
  serve    - Start SSH server for remote play
  scores   - View high scores and episode statistics

Examples:
  tetrisgym play
  tetrisgym rollout --episodes 100 --max-steps 5000
  tetrisgym serve --ssh :2222
  tetrisgym scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris-gym/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(rolloutCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
