package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typecatch/internal/config"
	"github.com/vovakirdan/typecatch/internal/core"
	"github.com/vovakirdan/typecatch/internal/storage"
)

// MenuItem is one entry of the main menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuDifficulty
	MenuScoreboard
	MenuQuit
)

var menuItems = []MenuItem{MenuPlay, MenuDifficulty, MenuScoreboard, MenuQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	difficulty     config.DifficultyPreset
	keyMapper      *KeyMapper
	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		difficulty: preset,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(menuItems)) % len(menuItems)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(menuItems)

	case MenuActionLeft, MenuActionRight:
		if menuItems[m.cursor] == MenuDifficulty {
			m.difficulty = m.difficulty.Next()
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case MenuPlay:
			m.play = true
			return m, tea.Quit
		case MenuDifficulty:
			m.difficulty = m.difficulty.Next()
		case MenuScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) label(item MenuItem) string {
	switch item {
	case MenuPlay:
		return "Play"
	case MenuDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.difficulty)
	case MenuScoreboard:
		return "High scores"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  T Y P E C A T C H  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Type the name before it runs away", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+m.label(item), m.width))
		b.WriteString("\n")
	}

	if m.store != nil {
		if best, err := m.store.HighScore(string(m.difficulty)); err == nil && best > 0 {
			b.WriteString("\n")
			b.WriteString(centerText(fmt.Sprintf("Best on %s: %d", m.difficulty, best), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Playing returns true if the player chose to start a run.
func (m MenuModel) Playing() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Difficulty returns the selected preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: preset, Quit: true}, nil
	}

	result := MenuResult{
		Difficulty:      m.Difficulty(),
		Config:          m.Config(),
		Play:            m.Playing(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting(),
	}
	if !result.Play && !result.WantsScoreboard {
		result.Quit = true
	}
	return result, nil
}
