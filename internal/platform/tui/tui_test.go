package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels/formats"
	"github.com/vovakirdan/tui-circuit/internal/config"
	"github.com/vovakirdan/tui-circuit/internal/core"
)

func testLevels() []levels.Level {
	return []levels.Level{
		{
			ID: "a", Name: "Alpha", Width: 2, Height: 2,
			Parts: []formats.Part{{
				At:   circuit.C(1, 1),
				Pins: map[circuit.Direction]circuit.ConnectionType{circuit.DirUp: circuit.ConnWirePin},
			}},
			Metadata: map[string]string{"hint": "first"},
		},
		{ID: "b", Name: "Beta", Width: 3, Height: 1},
	}
}

// The 2x2 board of level "a" is 10x6 characters, centred on an 80-wide
// screen: cell (0,0) spans x 35-39, y 3-5 and its centre character is (37,4).
func newBoard(t *testing.T) BoardModel {
	t.Helper()
	m, err := NewBoardModel(testLevels(), 0, config.DefaultCircuitConfig(), core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewBoardModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m BoardModel, msg tea.Msg) (BoardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BoardModel)
	if !ok {
		t.Fatalf("Update returned %T, expected BoardModel", next)
	}
	return bm, cmd
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPointerTracker(t *testing.T) {
	var p pointerTracker

	if _, crossed := p.move(circuit.C(1, 0), true); crossed {
		t.Error("move without press reported a crossing")
	}

	p.press(circuit.C(0, 0), true, true)
	if !p.wantsData {
		t.Error("press did not record data intent")
	}
	if _, crossed := p.move(circuit.C(0, 0), true); crossed {
		t.Error("move inside the same cell reported a crossing")
	}
	if from, crossed := p.move(circuit.C(1, 0), true); !crossed || from != circuit.C(0, 0) {
		t.Errorf("move to next cell = %v, %v, expected (0,0), true", from, crossed)
	}
	if from, crossed := p.move(circuit.C(2, 0), false); !crossed || from != circuit.C(1, 0) {
		t.Errorf("move off board = %v, %v, expected (1,0), true", from, crossed)
	}
	if _, crossed := p.move(circuit.C(1, 0), true); crossed {
		t.Error("move back onto the board reported a crossing")
	}

	p.release()
	if p.active || p.wantsData {
		t.Error("release left the drag active")
	}
}

func TestMouseButton(t *testing.T) {
	tests := []struct {
		in       tea.MouseButton
		expected core.MouseButton
	}{
		{tea.MouseButtonLeft, core.ButtonLeft},
		{tea.MouseButtonRight, core.ButtonRight},
		{tea.MouseButtonMiddle, core.ButtonMiddle},
		{tea.MouseButtonWheelUp, core.ButtonNone},
		{tea.MouseButtonNone, core.ButtonNone},
	}
	for _, tt := range tests {
		if got := mouseButton(tt.in); got != tt.expected {
			t.Errorf("mouseButton(%v) = %s, expected %s", tt.in, got, tt.expected)
		}
	}
}

func TestDragAcrossBorderLaysWire(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 37, 4))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 40, 4))
	m, _ = update(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 40, 4))

	g := m.Grid()
	if got := g.Cell(circuit.C(0, 0)).Connection(circuit.DirRight); got != circuit.ConnWire {
		t.Errorf("(0,0) right = %s, expected wire", got)
	}
	if got := g.Cell(circuit.C(1, 0)).Connection(circuit.DirLeft); got != circuit.ConnWire {
		t.Errorf("(1,0) left = %s, expected wire", got)
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, expected nil", m.Err())
	}
}

func TestRightDragLaysData(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonRight, 37, 4))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonRight, 37, 7))

	g := m.Grid()
	if got := g.Cell(circuit.C(0, 0)).Status(); got != circuit.StatusData {
		t.Errorf("(0,0) status = %s, expected data", got)
	}
	if got := g.Cell(circuit.C(0, 1)).Connection(circuit.DirUp); got != circuit.ConnData {
		t.Errorf("(0,1) up = %s, expected data", got)
	}
}

func TestDiagonalDragIsIgnored(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 37, 4))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 40, 7))

	for _, c := range m.Grid().Cells() {
		if c.Coord() == circuit.C(1, 1) {
			continue // part cell
		}
		if c.Status() != circuit.StatusEmpty {
			t.Errorf("cell %s status = %s, expected empty", c.Coord(), c.Status())
		}
	}
}

func TestMotionWithoutPressIsIgnored(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonNone, 37, 4))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonNone, 40, 4))

	if s := m.Grid().Stats(); s.Wires != 0 || s.Data != 0 {
		t.Errorf("Stats() = %+v, expected no links", s)
	}
}

func TestLevelSwitching(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, runeKey('n'))
	if m.Level().ID != "b" || m.Grid().Width() != 3 {
		t.Errorf("after next: level %s width %d, expected b width 3", m.Level().ID, m.Grid().Width())
	}
	m, _ = update(t, m, runeKey('n'))
	if m.Level().ID != "a" {
		t.Errorf("next wraps to %s, expected a", m.Level().ID)
	}
	m, _ = update(t, m, runeKey('p'))
	if m.Level().ID != "b" {
		t.Errorf("prev wraps to %s, expected b", m.Level().ID)
	}
}

func TestResetClearsLinks(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 37, 4))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 40, 4))
	m, cmd := update(t, m, runeKey('r'))

	if s := m.Grid().Stats(); s.Wires != 0 {
		t.Errorf("Stats().Wires = %d after reset, expected 0", s.Wires)
	}
	if cmd == nil || m.status != "level reset" {
		t.Errorf("status = %q, expected flash 'level reset'", m.status)
	}

	m, _ = update(t, m, ClearStatusMsg{Seq: m.statusSeq - 1})
	if m.status == "" {
		t.Error("stale ClearStatusMsg cleared the current status")
	}
	m, _ = update(t, m, ClearStatusMsg{Seq: m.statusSeq})
	if m.status != "" {
		t.Errorf("status = %q, expected cleared", m.status)
	}
}

func TestCopyBoard(t *testing.T) {
	var copied string
	old := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = old }()

	m := newBoard(t)
	defer func() { m.Close() }()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(copied, "■") {
		t.Errorf("copied board %q, expected the part glyph", copied)
	}
	if m.status != "board copied" {
		t.Errorf("status = %q, expected 'board copied'", m.status)
	}
}

func TestViewShowsTitleAndStats(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	view := m.View()
	for _, want := range []string{"I. Alpha", "first", "wires 0", "parts 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newBoard(t)
	defer func() { m.Close() }()

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("View() after quit is not empty")
	}
}

func TestBrokenLevelQuitsWithError(t *testing.T) {
	lvls := testLevels()[:1]
	lvls = append(lvls, levels.Level{
		ID: "broken", Name: "Broken", Width: 2, Height: 1,
		Parts: []formats.Part{{
			At:   circuit.C(0, 0),
			Pins: map[circuit.Direction]circuit.ConnectionType{circuit.DirRight: circuit.ConnWirePin},
		}},
		Blocked: []formats.Edge{{At: circuit.C(0, 0), Dir: circuit.DirRight}},
	})
	m, err := NewBoardModel(lvls, 0, config.DefaultCircuitConfig(), core.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewBoardModel failed: %v", err)
	}
	defer func() { m.Close() }()

	m, cmd := update(t, m, runeKey('n'))
	if cmd == nil {
		t.Error("failed level switch returned no command, expected quit")
	}
	if !errors.Is(m.Err(), circuit.ErrInvalidPin) {
		t.Errorf("Err() = %v, expected %v", m.Err(), circuit.ErrInvalidPin)
	}
	if m.Grid() != nil {
		t.Error("Grid() is set after a failed build")
	}

	m, _ = update(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 37, 4))
	if view := m.View(); !strings.Contains(view, "blocked") {
		t.Errorf("View() = %q, expected the build error", view)
	}
}

func TestNewBoardModelWithoutLevels(t *testing.T) {
	if _, err := NewBoardModel(nil, 0, config.DefaultCircuitConfig(), core.DefaultConfig(), nil); err == nil {
		t.Error("NewBoardModel(nil) succeeded, expected error")
	}
}

func TestLevelMenu(t *testing.T) {
	lvls := testLevels()
	rows := LevelRows(lvls)
	if rows[0][0] != "I" || rows[1][0] != "II" {
		t.Errorf("numbering = %s, %s, expected I, II", rows[0][0], rows[1][0])
	}
	if rows[0][3] != "1" || rows[0][2] != "2x2" {
		t.Errorf("row 0 = %v", rows[0])
	}

	var m tea.Model = NewLevelMenuModel(lvls, core.DefaultConfig())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter did not quit the menu")
	}
	i, ok := m.(LevelMenuModel).Selected()
	if !ok || i != 1 {
		t.Errorf("Selected() = %d, %v, expected 1, true", i, ok)
	}
}
