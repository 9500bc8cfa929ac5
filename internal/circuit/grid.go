package circuit

import (
	"fmt"
	"sync/atomic"
)

// live guards the one-grid-per-level rule.
var live atomic.Bool

// Visual receives every committed change of a cell's status or slots.
type Visual interface {
	Refresh(c *Cell)
}

// VisualFunc adapts a function to the Visual interface.
type VisualFunc func(c *Cell)

// Refresh calls f(c).
func (f VisualFunc) Refresh(c *Cell) { f(c) }

// SolutionExpander is called when a cell leaves the NotInSolution status.
// How the solution area grows is left to the implementation.
type SolutionExpander interface {
	ExpandSolution(c *Cell)
}

type nopVisual struct{}

func (nopVisual) Refresh(*Cell) {}

type nopExpander struct{}

func (nopExpander) ExpandSolution(*Cell) {}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithVisual installs the render sink.
func WithVisual(v Visual) Option {
	return func(g *Grid) {
		if v != nil {
			g.visual = v
		}
	}
}

// WithExpander installs the solution-expansion hook.
func WithExpander(e SolutionExpander) Option {
	return func(g *Grid) {
		if e != nil {
			g.expander = e
		}
	}
}

// WithDragGeometry sets the cell box and dead zone used by
// OnDragCrossedBorder. The geometry is not validated here.
func WithDragGeometry(d DragGeometry) Option {
	return func(g *Grid) {
		g.drag = d
	}
}

// WithSolutionBounds limits the initial solution area to the inclusive
// rectangle [min, max]. Cells outside start as NotInSolution.
func WithSolutionBounds(min, max Coord) Option {
	return func(g *Grid) {
		g.solutionMin = min
		g.solutionMax = max
		g.bounded = true
	}
}

// Grid is a fixed-size board of cells. It provides neighbor lookup and owns
// no connection logic itself.
type Grid struct {
	w, h  int
	cells []*Cell // row-major, index = y*w + x

	visual   Visual
	expander SolutionExpander
	drag     DragGeometry

	bounded     bool
	solutionMin Coord
	solutionMax Coord

	closed bool
}

// NewGrid builds a w×h grid with every cell created and positioned before it
// returns. Only one grid may be live at a time; Close releases it.
func NewGrid(w, h int, opts ...Option) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	if !live.CompareAndSwap(false, true) {
		return nil, ErrGridAlreadyLive
	}

	g := &Grid{
		w:        w,
		h:        h,
		cells:    make([]*Cell, w*h),
		visual:   nopVisual{},
		expander: nopExpander{},
		drag:     DefaultDragGeometry(),
	}
	for _, opt := range opts {
		opt(g)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := C(x, y)
			g.cells[y*w+x] = &Cell{
				grid:   g,
				coord:  c,
				status: g.initialStatus(c),
			}
		}
	}
	return g, nil
}

func (g *Grid) initialStatus(c Coord) CellStatus {
	if !g.bounded {
		return StatusEmpty
	}
	if c.X < g.solutionMin.X || c.X > g.solutionMax.X ||
		c.Y < g.solutionMin.Y || c.Y > g.solutionMax.Y {
		return StatusNotInSolution
	}
	return StatusEmpty
}

// Close tears the grid down so another may be built. It is safe to call more
// than once.
func (g *Grid) Close() {
	if g.closed {
		return
	}
	g.closed = true
	live.Store(false)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Cell returns the cell at c, or nil if c is out of bounds.
func (g *Grid) Cell(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[c.Y*g.w+c.X]
}

// DragGeometry returns the geometry used for border crossings.
func (g *Grid) DragGeometry() DragGeometry {
	return g.drag
}

// Cells returns all cells ordered by row then column.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// BlockEdge blocks the edge facing dir on the cell at c and the mirrored edge
// on its neighbor, if there is one.
func (g *Grid) BlockEdge(c Coord, dir Direction) error {
	cell := g.Cell(c)
	if cell == nil {
		return fmt.Errorf("circuit: block %s %s: out of bounds", c, dir)
	}
	inv, err := dir.Inverse()
	if err != nil {
		return err
	}
	cell.Block(dir)
	if n := cell.FindNeighbor(dir); n != nil {
		n.Block(inv)
	}
	return nil
}

// Stats summarises the board for status lines.
type Stats struct {
	Wires  int // Wire edges between two cells, counted once
	Data   int // Data edges between two cells, counted once
	ByKind map[CellStatus]int
}

// Stats counts statuses and links.
func (g *Grid) Stats() Stats {
	s := Stats{ByKind: make(map[CellStatus]int)}
	for _, c := range g.cells {
		s.ByKind[c.status]++
		for _, dir := range [2]Direction{DirRight, DirDown} {
			n := c.FindNeighbor(dir)
			if n == nil {
				continue
			}
			inv, _ := dir.Inverse()
			a, b := c.slots[dir], n.slots[inv]
			switch {
			case a == ConnWire || b == ConnWire:
				s.Wires++
			case a == ConnData || b == ConnData:
				s.Data++
			}
		}
	}
	return s
}
