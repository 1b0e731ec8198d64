package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typecatch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start typecatch in interactive menu mode.

Pick a difficulty, play, and come back to the menu when the run is over.
High scores of this session are shown per difficulty.

Controls:
  Up/Down/j/k      - Navigate menu
  Left/Right       - Change difficulty
  Enter/Space      - Select
  Tab              - High scores
  Q                - Quit

Examples:
  typecatch menu
  typecatch menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := runtimeConfig()
	preset := a.preset
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(a.deps.Store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(a.deps.Store, cfg.ScreenW, cfg.ScreenH, preset)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		// Fresh seed per run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(a.deps, player, preset, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
