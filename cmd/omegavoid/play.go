package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexkorep-games/omega-void-sub000/internal/config"
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
	"github.com/alexkorep-games/omega-void-sub000/internal/platform/tui"
	"github.com/alexkorep-games/omega-void-sub000/internal/storage"
)

var (
	flagSlot   int
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume a game",
	Long: `Start a new game, or resume the one stored in a save slot.

Controls:
  WASD/Arrows  - Thrust
  Space        - Fire
  N            - Cycle nav target
  Ctrl+S       - Save
  Q/Ctrl+C     - Quit

While docked:
  Up/Down      - Select commodity
  B/S          - Buy/Sell one unit
  C/X          - Buy cargo hold / shield upgrade
  U/Esc        - Undock

Examples:
  omegavoid play
  omegavoid play --seed 1337
  omegavoid play --resume --slot 2`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSlot, "slot", 1, "Save slot to use")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume from the save slot instead of starting fresh")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Open save storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var resume *storage.SaveSlot
	if flagResume {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --resume requires a saves database")
			os.Exit(1)
		}
		resume, err = store.Load(flagSlot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading slot %d: %v\n", flagSlot, err)
			os.Exit(1)
		}
		if resume == nil {
			fmt.Fprintf(os.Stderr, "Error: slot %d is empty\n", flagSlot)
			os.Exit(1)
		}
	}

	if runErr := tui.Run(cfg, store, rt, flagSlot, resume); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
