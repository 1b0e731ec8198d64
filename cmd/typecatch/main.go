// typecatch is a typing arcade for the terminal: creatures wander in and
// you catch them by typing their names before they get away.
//
// Usage:
//
//	typecatch play          - Start a run straight away
//	typecatch menu          - Main menu with difficulty picker and high scores
//	typecatch tiers         - Show the tiers of the creature catalog
//	typecatch serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Game config (YAML or TOML)
//	--catalog <path>      - Creature catalog YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/audio"
	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/platform/tui"
	"github.com/vovakirdan/typecatch/internal/registry"
	"github.com/vovakirdan/typecatch/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagCatalog    string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
	flagPlayer     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "typecatch",
	Short: "typecatch - catch creatures by typing their names",
	Long: `typecatch is a typing arcade for the terminal. A creature appears,
you type its name before its timer runs out, and it flies into your gallery.
Catch quickly to build combos and climb to harder tiers.

Available commands:
  play     - Start a run straight away
  menu     - Main menu with difficulty picker and high scores
  tiers    - Show the tiers of the creature catalog
  serve    - Start SSH server for remote play

Examples:
  typecatch play
  typecatch play --difficulty hard --mute
  typecatch menu --config ./typecatch.toml
  typecatch serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to creature catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Name recorded on the leaderboard (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(serveCmd)
}

// openLogger returns a file logger, or nil when no log file was asked for.
// The terminal belongs to the game, so nothing is logged to it.
func openLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return nil, nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "typecatch",
		Level:           level,
	})
	return logger, f, nil
}

// app holds everything a command needs and what must be released after.
type app struct {
	deps    tui.Deps
	preset  config.DifficultyPreset
	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// setup loads config and catalog and opens the leaderboard. Sound is
// only started when withAudio is set and --mute is not.
func setup(withAudio bool) (*app, error) {
	a := &app{}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	a.preset = preset

	logger, closer, err := openLogger()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		a.closers = append(a.closers, func() { closer.Close() })
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	cat, err := registry.Load(flagCatalog)
	if err != nil {
		a.Close()
		return nil, err
	}

	lib := assets.NewLibrary(cat, cfg.Display.Locale)
	deps := tui.Deps{
		Config:  cfg,
		Catalog: cat,
		Library: lib,
		Audio:   audio.Null{},
		Logger:  logger,
	}

	store, err := storage.OpenMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
	} else {
		deps.Store = store
		a.closers = append(a.closers, func() { store.Close() })
	}

	if withAudio && !flagMute {
		synth := audio.NewSynth(lib, logger)
		if err := synth.Init(); err != nil {
			if logger != nil {
				logger.Warn("sound disabled", "error", err)
			}
		} else {
			deps.Audio = synth
			a.closers = append(a.closers, synth.Close)
		}
	}

	a.deps = deps
	return a, nil
}

// runtimeConfig sizes the first frame to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
