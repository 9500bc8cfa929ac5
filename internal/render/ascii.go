package render

import (
	"strings"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/core"
)

// Edge markers.
const (
	wirePinRune = '●'
	dataPinRune = '◆'
	blockedRune = '×'
	partRune    = '■'
)

// ASCIIRenderer draws a grid into a Screen, one CellW×CellH box per cell.
// Cell corners are left blank: they are the drag dead zones.
type ASCIIRenderer struct {
	CellW, CellH int
	Theme        Theme
}

// NewASCIIRenderer creates a renderer with the given cell size and theme.
func NewASCIIRenderer(cellW, cellH int, theme Theme) ASCIIRenderer {
	return ASCIIRenderer{CellW: core.Max(cellW, 1), CellH: core.Max(cellH, 1), Theme: theme}
}

// BoardSize returns the size of the whole board in characters.
func (r ASCIIRenderer) BoardSize(g *circuit.Grid) (w, h int) {
	return g.Width() * r.CellW, g.Height() * r.CellH
}

// CellRect returns the screen box of the cell at c for a board drawn at origin.
func (r ASCIIRenderer) CellRect(origin core.Rect, c circuit.Coord) core.Rect {
	return core.NewRect(origin.X+c.X*r.CellW, origin.Y+c.Y*r.CellH, r.CellW, r.CellH)
}

// CellAt maps a screen position to the cell under it. The board is drawn with
// its top-left corner at origin.
func (r ASCIIRenderer) CellAt(origin core.Rect, g *circuit.Grid, x, y int) (circuit.Coord, bool) {
	dx, dy := x-origin.X, y-origin.Y
	if dx < 0 || dy < 0 {
		return circuit.Coord{}, false
	}
	c := circuit.C(dx/r.CellW, dy/r.CellH)
	return c, g.InBounds(c)
}

// Draw renders every cell of g with the board's top-left corner at origin.
func (r ASCIIRenderer) Draw(s *core.Screen, origin core.Rect, g *circuit.Grid) {
	for _, cell := range g.Cells() {
		r.DrawCell(s, r.CellRect(origin, cell.Coord()), cell)
	}
}

// DrawCell renders one cell into box.
func (r ASCIIRenderer) DrawCell(s *core.Screen, box core.Rect, cell *circuit.Cell) {
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			s.Set(x, y, ' ')
		}
	}

	cx, cy := box.X+box.W/2, box.Y+box.H/2
	body := r.Theme.StatusColor(cell.Status())

	if cell.Status() == circuit.StatusPart {
		s.SetWithColor(cx, cy, partRune, body)
	} else {
		s.SetWithColor(cx, cy, Glyph(cell), body)
	}

	for _, dir := range circuit.Directions {
		slot := cell.Connection(dir)
		if slot == circuit.ConnNone {
			continue
		}
		color := r.Theme.SlotColor(slot)

		// Arm from the centre to the edge.
		var xs, ys []int
		var arm rune
		switch dir {
		case circuit.DirUp:
			xs, ys, arm = []int{cx}, span(box.Y, cy), '│'
		case circuit.DirDown:
			xs, ys, arm = []int{cx}, span(cy+1, box.Bottom()), '│'
		case circuit.DirLeft:
			xs, ys, arm = span(box.X, cx), []int{cy}, '─'
		case circuit.DirRight:
			xs, ys, arm = span(cx+1, box.Right()), []int{cy}, '─'
		}
		if slot.IsDataKind() {
			arm = doubled(arm)
		}

		if slot != circuit.ConnBlocked {
			for _, y := range ys {
				for _, x := range xs {
					s.SetWithColor(x, y, arm, color)
				}
			}
		}

		// Marker on the outermost character of the arm.
		ex, ey := edgePoint(dir, box, cx, cy)
		switch slot {
		case circuit.ConnWirePin:
			s.SetWithColor(ex, ey, wirePinRune, color)
		case circuit.ConnDataPin:
			s.SetWithColor(ex, ey, dataPinRune, color)
		case circuit.ConnBlocked:
			s.SetWithColor(ex, ey, blockedRune, color)
		}
	}
}

func doubled(r rune) rune {
	if r == '│' {
		return '║'
	}
	return '═'
}

func span(from, to int) []int {
	out := make([]int, 0, core.Max(to-from, 0))
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func edgePoint(dir circuit.Direction, box core.Rect, cx, cy int) (x, y int) {
	switch dir {
	case circuit.DirUp:
		return cx, box.Y
	case circuit.DirDown:
		return cx, box.Bottom() - 1
	case circuit.DirLeft:
		return box.X, cy
	default:
		return box.Right() - 1, cy
	}
}

// RenderText draws g into a plain multi-line string without colors, trimming
// trailing spaces. Used for clipboard copies and golden tests.
func (r ASCIIRenderer) RenderText(g *circuit.Grid) string {
	w, h := r.BoardSize(g)
	s := core.NewScreen(w, h)
	r.Draw(s, core.NewRect(0, 0, w, h), g)

	lines := make([]string, h)
	for y := range h {
		lines[y] = strings.TrimRight(s.Row(y), " ")
	}
	return strings.Join(lines, "\n")
}
