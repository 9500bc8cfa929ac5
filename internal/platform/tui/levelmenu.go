package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-circuit/internal/circuit/levels"
	"github.com/vovakirdan/tui-circuit/internal/core"
)

// LevelMenuModel is the level picker: a table of levels numbered in Roman
// numerals.
type LevelMenuModel struct {
	levels   []levels.Level
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	width    int
	height   int
	selected int // -1 while choosing
	quitting bool
}

// NewLevelMenuModel creates a level picker for lvls.
func NewLevelMenuModel(lvls []levels.Level, rc core.RuntimeConfig) LevelMenuModel {
	m := LevelMenuModel{
		levels:   lvls,
		help:     help.New(),
		keys:     DefaultMenuKeyMap(),
		width:    rc.ScreenW,
		height:   rc.ScreenH,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

// LevelRows builds one table row per level.
func LevelRows(lvls []levels.Level) []table.Row {
	rows := make([]table.Row, len(lvls))
	for i, lvl := range lvls {
		rows[i] = table.Row{
			core.Roman(i + 1),
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			fmt.Sprintf("%d", lvl.PinCount()),
			lvl.ID,
		}
	}
	return rows
}

// createTable creates the level table sized to the window.
func (m *LevelMenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Pins", Width: 5},
		{Title: "ID", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(LevelRows(m.levels)),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.table.Cursor()
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C I R C U I T"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(hintStyle.Render("No levels found."), m.width))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen level index, or false if none was chosen.
func (m LevelMenuModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelMenu runs the level picker and returns the chosen index.
// ok is false when the user quit without choosing.
func RunLevelMenu(lvls []levels.Level, rc core.RuntimeConfig) (index int, ok bool, err error) {
	p := tea.NewProgram(
		NewLevelMenuModel(lvls, rc),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isMenu := finalModel.(LevelMenuModel)
	if !isMenu {
		return 0, false, nil
	}
	index, ok = m.Selected()
	return index, ok, nil
}
