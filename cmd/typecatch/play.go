package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/typecatch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run straight away.

Controls:
  Letters    - Type the creature's name
  Esc        - Pause / resume
  Up/Down    - Move in the pause and end menus
  Enter      - Select menu item
  Ctrl+R     - Restart the run
  Ctrl+S     - Save a screenshot to ~/.typecatch/screenshots
  Ctrl+C     - Quit

Difficulty options:
  easy   - Longer timers, forgiving tier rules
  normal - Default timers, progression on
  hard   - Short timers that shrink further at high tiers
  fixed  - No progression, stays at the configured start tier

Examples:
  typecatch play
  typecatch play --difficulty easy
  typecatch play --seed 42 --mute
  typecatch play --config ./my-typecatch.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(a.deps, playerName(), a.preset, runtimeConfig())
}
