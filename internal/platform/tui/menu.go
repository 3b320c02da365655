package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// MenuResult is what the player picked.
type MenuResult struct {
	GameID     string
	Difficulty config.DifficultyPreset
	Config     core.RuntimeConfig
	Quit       bool
}

// MenuModel lets the player pick a mode and a difficulty preset.
type MenuModel struct {
	modes    []registry.GameInfo
	table    table.Model
	preset   int
	keys     MenuKeyMap
	help     help.Model
	config   core.RuntimeConfig
	selected bool
	quitting bool
}

// NewMenuModel lists every registered mode. difficulty preselects a preset;
// unknown names fall back to normal.
func NewMenuModel(cfg core.RuntimeConfig, difficulty string) MenuModel {
	modes := registry.List()

	rows := make([]table.Row, len(modes))
	for i, g := range modes {
		rows[i] = table.Row{g.Title, g.ID}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mode", Width: 12},
			{Title: "ID", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("226")).
		Bold(true)
	t.SetStyles(styles)

	preset := 1
	if p, err := config.ParsePreset(difficulty); err == nil {
		for i, known := range config.Presets {
			if known == p {
				preset = i
			}
		}
	}

	return MenuModel{
		modes:  modes,
		table:  t,
		preset: preset,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		config: cfg,
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
		case key.Matches(msg, m.keys.Difficulty):
			step := 1
			if msg.String() == "left" {
				step = len(config.Presets) - 1
			}
			m.preset = (m.preset + step) % len(config.Presets)
		case key.Matches(msg, m.keys.Select):
			if len(m.modes) > 0 {
				m.selected = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// View renders the centered menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	difficulty := fmt.Sprintf("Difficulty  ‹ %s ›", m.Difficulty())
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("B L O C K F A L L"),
		subtitleStyle.Render("pick a mode"),
		"",
		m.table.View(),
		"",
		difficulty,
		"",
		m.help.View(m.keys),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Difficulty returns the preset currently shown.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// Result reports the selection. Quit is set when nothing was picked.
func (m MenuModel) Result() MenuResult {
	r := MenuResult{
		Difficulty: m.Difficulty(),
		Config:     m.config,
		Quit:       !m.selected,
	}
	if m.selected {
		r.GameID = m.modes[m.table.Cursor()].ID
	}
	return r
}

// RunMenu shows the menu in the local terminal.
func RunMenu(cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg, difficulty), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
