package circuit

import (
	"errors"
	"fmt"
)

// Verify checks the board-wide invariants: every cell's status agrees with
// its slots, and both sides of every shared edge describe the same link.
// A nil result means the board is consistent.
func (g *Grid) Verify() error {
	var errs []error
	for _, c := range g.cells {
		if err := c.verifyStatus(); err != nil {
			errs = append(errs, err)
		}
		for _, dir := range [2]Direction{DirRight, DirDown} {
			n := c.FindNeighbor(dir)
			if n == nil {
				continue
			}
			inv, _ := dir.Inverse()
			if !edgeAgrees(c.slots[dir], n.slots[inv]) {
				errs = append(errs, fmt.Errorf("edge %s %s / %s %s: %s vs %s",
					c.coord, dir, n.coord, inv, c.slots[dir], n.slots[inv]))
			}
		}
	}
	return errors.Join(errs...)
}

func (c *Cell) verifyStatus() error {
	linked := false
	for dir, s := range c.slots {
		if conflicts(c.status, s) {
			return fmt.Errorf("cell %s: %s slot %s on a %s cell", c.coord, Direction(dir), s, c.status)
		}
		if !s.IsOpen() {
			linked = true
		}
	}
	if !linked && (c.status == StatusWire || c.status == StatusData) {
		return fmt.Errorf("cell %s: %s status without links", c.coord, c.status)
	}
	return nil
}

// edgeAgrees reports whether two mirrored slots describe one consistent edge.
// A pin may face an unconnected slot or a link of its own kind.
func edgeAgrees(a, b ConnectionType) bool {
	if a == b {
		return true
	}
	if b.IsPin() {
		a, b = b, a
	}
	switch a {
	case ConnWirePin:
		return b == ConnNone || b == ConnWire
	case ConnDataPin:
		return b == ConnNone || b == ConnData
	default:
		return false
	}
}
