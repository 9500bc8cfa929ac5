package tui

import "github.com/vovakirdan/tui-circuit/internal/circuit"

// pointerTracker follows one pressed drag across the board and reports each
// time the pointer leaves the cell it was over.
type pointerTracker struct {
	active    bool
	wantsData bool
	cell      circuit.Coord // cell under the pointer at the last event
	onBoard   bool
}

// press starts a drag at the given position.
func (p *pointerTracker) press(at circuit.Coord, onBoard, wantsData bool) {
	p.active = true
	p.wantsData = wantsData
	p.cell = at
	p.onBoard = onBoard
}

// move records a pointer position during a drag. It returns the cell that was
// exited, if the pointer left a board cell since the previous event.
func (p *pointerTracker) move(at circuit.Coord, onBoard bool) (exited circuit.Coord, crossed bool) {
	if !p.active {
		return circuit.Coord{}, false
	}
	if p.onBoard && (!onBoard || at != p.cell) {
		exited, crossed = p.cell, true
	}
	p.cell = at
	p.onBoard = onBoard
	return exited, crossed
}

// release ends the drag.
func (p *pointerTracker) release() {
	*p = pointerTracker{}
}
