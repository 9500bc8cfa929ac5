package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels"
	"github.com/vovakirdan/tui-circuit/internal/config"
	"github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/render"
)

// Board layout: title, hint, blank line, then the board.
const (
	boardTop     = 3
	statusMargin = 1
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// BoardModel is the Bubble Tea model for playing levels.
type BoardModel struct {
	levels []levels.Level
	index  int

	grid     *circuit.Grid
	tracker  *render.Tracker
	renderer render.ASCIIRenderer
	exporter *render.PNGExporter

	cfg    config.CircuitConfig
	logger *log.Logger
	screen *core.Screen
	keys   BoardKeyMap
	help   help.Model
	drag   pointerTracker

	width, height int
	status        string
	statusSeq     int
	err           error
	quitting      bool
}

// NewBoardModel creates a board model and builds the level at index start.
func NewBoardModel(lvls []levels.Level, start int, cfg config.CircuitConfig, rc core.RuntimeConfig, logger *log.Logger) (BoardModel, error) {
	if len(lvls) == 0 {
		return BoardModel{}, errors.New("no levels to play")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := render.NewTheme(cfg.Theme)

	m := BoardModel{
		levels:   lvls,
		tracker:  render.NewTracker(),
		renderer: render.NewASCIIRenderer(cfg.Layout.CellWidth, cfg.Layout.CellHeight, theme),
		exporter: render.NewPNGExporter(cfg.Export, theme),
		cfg:      cfg,
		logger:   logger,
		screen:   core.NewScreen(rc.ScreenW, rc.ScreenH),
		keys:     DefaultBoardKeyMap(),
		help:     help.New(),
		width:    rc.ScreenW,
		height:   rc.ScreenH,
	}
	if err := m.loadLevel(core.Clamp(start, 0, len(lvls)-1)); err != nil {
		return BoardModel{}, err
	}
	return m, nil
}

// loadLevel tears down the current grid and builds level i.
func (m *BoardModel) loadLevel(i int) error {
	if m.grid != nil {
		m.grid.Close()
		m.grid = nil
	}
	m.tracker.Reset()
	m.drag.release()

	lvl := m.levels[i]
	g, err := lvl.Build(
		circuit.WithVisual(m.tracker),
		circuit.WithDragGeometry(m.cfg.DragGeometry()),
	)
	if err != nil {
		return err
	}
	m.grid = g
	m.index = i
	m.tracker.Flush()
	m.logger.Info("level loaded", "id", lvl.ID, "size", fmt.Sprintf("%dx%d", lvl.Width, lvl.Height))
	return nil
}

// Close releases the live grid.
func (m BoardModel) Close() {
	if m.grid != nil {
		m.grid.Close()
	}
}

// Err returns the fatal error that ended the session, if any.
func (m BoardModel) Err() error {
	return m.err
}

// Level returns the level being played.
func (m BoardModel) Level() levels.Level {
	return m.levels[m.index]
}

// Grid returns the live grid.
func (m BoardModel) Grid() *circuit.Grid {
	return m.grid
}

// Init initializes the model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.grid == nil {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		return m.switchLevel(m.index, "level reset")

	case key.Matches(msg, m.keys.Next):
		return m.switchLevel((m.index+1)%len(m.levels), "")

	case key.Matches(msg, m.keys.Prev):
		return m.switchLevel((m.index+len(m.levels)-1)%len(m.levels), "")

	case key.Matches(msg, m.keys.Copy):
		if err := copyToClipboard(m.renderer.RenderText(m.grid)); err != nil {
			m.logger.Warn("clipboard unavailable", "error", err)
			return m.flash("clipboard unavailable")
		}
		return m.flash("board copied")

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			return m.flash("screenshot failed")
		}
		return m.flash("saved " + path)
	}

	return m, nil
}

func (m BoardModel) switchLevel(i int, note string) (tea.Model, tea.Cmd) {
	if err := m.loadLevel(i); err != nil {
		m.logger.Error("level build failed", "id", m.levels[i].ID, "error", err)
		m.err = err
		return m, tea.Quit
	}
	if note == "" {
		return m, nil
	}
	return m.flash(note)
}

// flash shows a transient status message.
func (m BoardModel) flash(text string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	return m, clearStatusCmd(statusTTL, m.statusSeq)
}

// origin returns the top-left corner of the board on screen.
func (m BoardModel) origin() core.Rect {
	w, h := m.renderer.BoardSize(m.grid)
	x := core.Max((m.width-w)/2, 0)
	return core.NewRect(x, boardTop, w, h)
}

// handleMouse turns pointer drags into border crossings. The exited cell is
// told where the pointer went, relative to its own centre.
func (m BoardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	origin := m.origin()
	at, onBoard := m.renderer.CellAt(origin, m.grid, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		btn := mouseButton(msg.Button)
		if btn == core.ButtonNone {
			return m, nil
		}
		ev := core.PointerEvent{Pos: core.V(float64(msg.X), float64(msg.Y)), Button: btn, Shift: msg.Shift}
		m.drag.press(at, onBoard, ev.WantsData(m.cfg.DataButton()))

	case tea.MouseActionMotion:
		from, crossed := m.drag.move(at, onBoard)
		if !crossed {
			return m, nil
		}
		pos := core.LocalPosition(msg.X, msg.Y, m.renderer.CellRect(origin, from))
		return m.crossBorder(from, pos)

	case tea.MouseActionRelease:
		m.drag.release()
	}
	return m, nil
}

// crossBorder delivers one crossing to the exited cell.
func (m BoardModel) crossBorder(from circuit.Coord, pos core.Vec) (tea.Model, tea.Cmd) {
	err := m.grid.Cell(from).OnDragCrossedBorder(pos, m.drag.wantsData)
	if err != nil {
		if circuit.IsFatal(err) {
			m.logger.Error("board invariant broken", "cell", from, "pos", pos, "error", err)
			m.err = err
			return m, tea.Quit
		}
		m.logger.Warn("crossing failed", "cell", from, "error", err)
		return m, nil
	}

	if dirty := m.tracker.Flush(); len(dirty) > 0 {
		m.logger.Debug("link changed", "from", from, "pos", pos, "data", m.drag.wantsData, "cells", dirty)
	}
	return m, nil
}

// saveScreenshot writes the board as PNG under ~/.circuit/screenshots.
func (m BoardModel) saveScreenshot() (string, error) {
	state, err := config.StateDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(state, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.Level().ID, timestamp))
	if err := m.exporter.SavePNG(path, m.grid); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.grid == nil {
		if m.err != nil {
			return errorStyle.Render(m.err.Error()) + "\n"
		}
		return ""
	}

	lvl := m.Level()
	origin := m.origin()

	// The screen holds the board and the status line; the styled header
	// above it fills the first boardTop rows.
	local := origin
	local.Y = 0
	m.screen.Resize(core.Max(m.width, origin.Right()), origin.H+statusMargin+1)
	m.renderer.Draw(m.screen, local, m.grid)

	stats := m.grid.Stats()
	line := fmt.Sprintf("wires %d  data %d  parts %d", stats.Wires, stats.Data, stats.ByKind[circuit.StatusPart])
	if m.status != "" {
		line += "  |  " + m.status
	}
	m.screen.DrawText(local.X, local.Bottom()+statusMargin, line, core.ColorGray)

	title := fmt.Sprintf("%s. %s", core.Roman(m.index+1), lvl.Name)
	header := centerText(titleStyle.Render(title), m.width) + "\n" +
		centerText(hintStyle.Render(lvl.Metadata["hint"]), m.width) + "\n\n"

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.err != nil {
		footer = errorStyle.Render(m.err.Error())
	}
	return header + RenderScreen(m.screen) + "\n" + footer
}

// RunBoard starts the Bubble Tea program on the given levels.
func RunBoard(lvls []levels.Level, start int, cfg config.CircuitConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewBoardModel(lvls, start, cfg, rc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(BoardModel); ok {
		m.Close()
		if err == nil {
			err = m.Err()
		}
	} else {
		model.Close()
	}
	return err
}
