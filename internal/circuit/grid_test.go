package circuit_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
)

func TestNewGridPopulatesEveryCell(t *testing.T) {
	g := newGrid(t, 5, 3)

	if g.Width() != 5 || g.Height() != 3 {
		t.Errorf("expected 5x3 grid, got %dx%d", g.Width(), g.Height())
	}
	if len(g.Cells()) != 15 {
		t.Fatalf("expected 15 cells, got %d", len(g.Cells()))
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			c := g.Cell(circuit.C(x, y))
			if c == nil {
				t.Fatalf("cell (%d,%d) missing", x, y)
			}
			if c.Coord() != circuit.C(x, y) {
				t.Errorf("cell at (%d,%d) reports %s", x, y, c.Coord())
			}
			if c.Status() != circuit.StatusEmpty {
				t.Errorf("cell %s status = %s, expected empty", c.Coord(), c.Status())
			}
		}
	}
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := circuit.NewGrid(size[0], size[1]); !errors.Is(err, circuit.ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) = %v, expected ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestSecondLiveGridIsFatal(t *testing.T) {
	g := newGrid(t, 2, 2)

	_, err := circuit.NewGrid(2, 2)
	if !errors.Is(err, circuit.ErrGridAlreadyLive) {
		t.Fatalf("second NewGrid = %v, expected ErrGridAlreadyLive", err)
	}
	if !circuit.IsFatal(err) {
		t.Error("ErrGridAlreadyLive should be fatal")
	}

	g.Close()
	g.Close() // idempotent

	next, err := circuit.NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid after Close = %v", err)
	}
	next.Close()
}

func TestGridCellOutOfBounds(t *testing.T) {
	g := newGrid(t, 3, 3)

	for _, c := range []circuit.Coord{circuit.C(-1, 0), circuit.C(0, -1), circuit.C(3, 0), circuit.C(0, 3)} {
		if g.Cell(c) != nil {
			t.Errorf("Cell(%s) should be nil", c)
		}
		if g.InBounds(c) {
			t.Errorf("InBounds(%s) should be false", c)
		}
	}
}

func TestFindNeighborAtBorders(t *testing.T) {
	g := newGrid(t, 4, 3)

	tests := []struct {
		at       circuit.Coord
		dir      circuit.Direction
		expected *circuit.Coord
	}{
		{circuit.C(0, 1), circuit.DirLeft, nil},
		{circuit.C(3, 1), circuit.DirRight, nil},
		{circuit.C(1, 0), circuit.DirUp, nil},
		{circuit.C(1, 2), circuit.DirDown, nil},
		{circuit.C(0, 0), circuit.DirRight, &circuit.Coord{X: 1, Y: 0}},
		{circuit.C(2, 2), circuit.DirUp, &circuit.Coord{X: 2, Y: 1}},
		{circuit.C(3, 2), circuit.DirLeft, &circuit.Coord{X: 2, Y: 2}},
		{circuit.C(3, 0), circuit.DirDown, &circuit.Coord{X: 3, Y: 1}},
	}

	for _, tc := range tests {
		n := g.Cell(tc.at).FindNeighbor(tc.dir)
		switch {
		case tc.expected == nil && n != nil:
			t.Errorf("FindNeighbor(%s, %s) = %s, expected none", tc.at, tc.dir, n.Coord())
		case tc.expected != nil && (n == nil || n.Coord() != *tc.expected):
			t.Errorf("FindNeighbor(%s, %s) = %v, expected %s", tc.at, tc.dir, n, *tc.expected)
		}
	}
}

func TestSolutionBounds(t *testing.T) {
	g := newGrid(t, 4, 4, circuit.WithSolutionBounds(circuit.C(1, 1), circuit.C(2, 2)))

	if s := g.Cell(circuit.C(0, 0)).Status(); s != circuit.StatusNotInSolution {
		t.Errorf("(0,0) status = %s, expected not_in_solution", s)
	}
	if s := g.Cell(circuit.C(2, 2)).Status(); s != circuit.StatusEmpty {
		t.Errorf("(2,2) status = %s, expected empty", s)
	}
	if got := g.Stats().ByKind[circuit.StatusEmpty]; got != 4 {
		t.Errorf("empty cells = %d, expected 4", got)
	}
}

func TestStatsCountsEdgesOnce(t *testing.T) {
	g := newGrid(t, 3, 3)
	center := g.Cell(circuit.C(1, 1))
	if err := center.AttemptConnection(circuit.DirRight, false); err != nil {
		t.Fatal(err)
	}
	if err := center.AttemptConnection(circuit.DirLeft, false); err != nil {
		t.Fatal(err)
	}
	if err := g.Cell(circuit.C(0, 2)).AttemptConnection(circuit.DirRight, true); err != nil {
		t.Fatal(err)
	}

	s := g.Stats()
	if s.Wires != 2 || s.Data != 1 {
		t.Errorf("Stats() = %d wires / %d data, expected 2 / 1", s.Wires, s.Data)
	}
}

func TestVerifyDetectsOneSidedEdge(t *testing.T) {
	g := newGrid(t, 2, 1)
	if err := g.Cell(circuit.C(0, 0)).OnConnectionChanged(circuit.DirRight, circuit.ConnWire); err != nil {
		t.Fatal(err)
	}
	if err := g.Verify(); err == nil {
		t.Error("Verify() should report the one-sided wire")
	}
}

// TestRandomDragsKeepInvariants replays many random moves and checks the
// board-wide invariants after each one.
func TestRandomDragsKeepInvariants(t *testing.T) {
	g := newGrid(t, 6, 5, circuit.WithSolutionBounds(circuit.C(1, 0), circuit.C(4, 4)))
	if err := g.Cell(circuit.C(2, 2)).PlacePart(map[circuit.Direction]circuit.ConnectionType{
		circuit.DirUp:   circuit.ConnWirePin,
		circuit.DirDown: circuit.ConnDataPin,
	}); err != nil {
		t.Fatal(err)
	}
	if err := g.BlockEdge(circuit.C(3, 3), circuit.DirRight); err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		c := circuit.C(rng.Intn(g.Width()), rng.Intn(g.Height()))
		dir := circuit.Directions[rng.Intn(4)]
		data := rng.Intn(2) == 0

		cell := g.Cell(c)
		before := cell.Connection(dir)
		if err := cell.AttemptConnection(dir, data); err != nil {
			t.Fatalf("move %d: AttemptConnection(%s, %s, %v) = %v", i, c, dir, data, err)
		}
		if before == circuit.ConnBlocked || before.IsPin() {
			if cell.Connection(dir) != before {
				t.Fatalf("move %d: %s %s changed from %s", i, c, dir, before)
			}
		}
		if err := g.Verify(); err != nil {
			t.Fatalf("move %d: invariants broken: %v", i, err)
		}
	}
}
