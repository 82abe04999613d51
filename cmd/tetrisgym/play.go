package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris-gym/internal/config"
	"github.com/vovakirdan/tetris-gym/internal/platform/tui"
	"github.com/vovakirdan/tetris-gym/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	Long: `Play the simulation in the terminal.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Up/W/X     - Rotate
  Down/S/J   - Soft drop
  Space      - Hard drop
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  tetrisgym play
  tetrisgym play --seed 42
  tetrisgym play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Make sure the board fits the terminal: two columns per cell plus frame,
	// three lines of HUD below.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := cfg.Board.Width*2 + 2
		needH := cfg.Board.Height + 5
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Terminal too small: need at least %dx%d, have %dx%d\n",
				needW, needH, w, h)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(cfg, flagSeed, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
