package render

import (
	"sort"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
)

// Tracker is a circuit.Visual that records which cells asked to be redrawn.
// The terminal redraws the board only when Flush returns something.
type Tracker struct {
	counts map[circuit.Coord]int
	dirty  map[circuit.Coord]struct{}
	total  int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		counts: make(map[circuit.Coord]int),
		dirty:  make(map[circuit.Coord]struct{}),
	}
}

// Refresh implements circuit.Visual.
func (t *Tracker) Refresh(c *circuit.Cell) {
	t.counts[c.Coord()]++
	t.dirty[c.Coord()] = struct{}{}
	t.total++
}

// Count returns how often the cell at c was refreshed.
func (t *Tracker) Count(c circuit.Coord) int {
	return t.counts[c]
}

// Total returns the number of refreshes since the last Reset.
func (t *Tracker) Total() int {
	return t.total
}

// Flush returns the cells refreshed since the previous Flush, in row-major
// order, and clears the dirty set.
func (t *Tracker) Flush() []circuit.Coord {
	out := make([]circuit.Coord, 0, len(t.dirty))
	for c := range t.dirty {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	clear(t.dirty)
	return out
}

// Reset forgets all counts.
func (t *Tracker) Reset() {
	clear(t.counts)
	clear(t.dirty)
	t.total = 0
}
