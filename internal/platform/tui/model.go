package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/typecatch/internal/assets"
	"github.com/vovakirdan/typecatch/internal/audio"
	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/games/typecatch"
	"github.com/vovakirdan/typecatch/internal/registry"
	"github.com/vovakirdan/typecatch/internal/storage"
)

// Deps bundles what every screen needs. Store may be nil, in which case
// finished runs are not recorded.
type Deps struct {
	Config  config.GameConfig
	Catalog *registry.Catalog
	Library *assets.Library
	Audio   audio.Output
	Store   *storage.Store
	Logger  *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Audio == nil {
		d.Audio = audio.Null{}
	}
	if d.Library == nil {
		d.Library = assets.NewLibrary(d.Catalog, d.Config.Display.Locale)
	}
	return d
}

// NewGame creates a typecatch game with the preset applied over the base config.
func (d Deps) NewGame(preset config.DifficultyPreset) *typecatch.Game {
	d = d.withDefaults()
	cfg := d.Config
	config.ApplyPreset(&cfg, preset)
	return typecatch.New(typecatch.Options{
		Config:  cfg,
		Catalog: d.Catalog,
		Assets:  d.Library,
		Audio:   d.Audio,
		Logger:  d.Logger,
	})
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	canvas     *Canvas
	deps       Deps
	player     string
	difficulty config.DifficultyPreset
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	done       bool // the player left the game
	embedded   bool // hosted by a SessionModel rather than its own program
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, deps Deps, player string, preset config.DifficultyPreset, cfg core.RuntimeConfig) Model {
	deps = deps.withDefaults()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewCanvas(screen, deps.Library),
		deps:       deps,
		player:     player,
		difficulty: preset,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues input for the next frame. Quit is applied at once so
// the run is recorded before the program exits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.advance()
		return m, m.exit()
	}
	return m, nil
}

// handleResize adapts the game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(core.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.advance()
	if m.done {
		return m, m.exit()
	}
	return m, tickCmd(m.config.TickRate)
}

// advance runs one frame and records any run that finished during it.
func (m *Model) advance() {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.recordRun()
	if m.gameState.Quit {
		m.done = true
	}
}

func (m *Model) recordRun() {
	s, ok := m.game.(core.Summarizer)
	if !ok {
		return
	}
	run, ok := s.Summary()
	if !ok || m.deps.Store == nil {
		return
	}
	_, err := m.deps.Store.SaveRun(storage.RunRecord{
		RunID:       run.RunID,
		Player:      m.player,
		Difficulty:  string(m.difficulty),
		Score:       run.Score,
		Caught:      run.Caught,
		Mistakes:    run.Mistakes,
		HighestTier: run.HighestTier,
		Combo:       run.Combo,
	})
	if err != nil {
		m.deps.Logger.Warn("could not record run", "run", run.RunID, "error", err)
		return
	}
	m.deps.Logger.Info("run recorded", "run", run.RunID, "player", m.player, "score", run.Score)
}

func (m *Model) exit() tea.Cmd {
	m.done = true
	if m.embedded {
		return nil
	}
	m.quitting = true
	return tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".typecatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.screen.Clear()
	m.game.Render(m.canvas)
}

// Done reports whether the player has left the game.
func (m Model) Done() bool {
	return m.done
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Run plays a single game in its own Bubble Tea program.
func Run(deps Deps, player string, preset config.DifficultyPreset, cfg core.RuntimeConfig) error {
	model := NewModel(deps.NewGame(preset), deps, player, preset, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
