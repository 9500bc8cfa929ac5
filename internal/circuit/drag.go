package circuit

import (
	"fmt"

	"github.com/vovakirdan/tui-circuit/internal/core"
)

// DragGeometry describes a cell's bounding box and the margin along each edge
// inside which a border crossing counts as near that edge.
type DragGeometry struct {
	HalfExtent core.Vec // Half the cell width and height
	DeadZone   core.Vec // Margin on the X and Y axes
}

// DefaultDragGeometry is a unit cell with a tenth of its size as dead zone.
func DefaultDragGeometry() DragGeometry {
	return DragGeometry{
		HalfExtent: core.V(0.5, 0.5),
		DeadZone:   core.V(0.1, 0.1),
	}
}

// Validate checks that the dead zone is non-negative and smaller than the
// half extent on both axes, which keeps any position near at most two edges.
func (g DragGeometry) Validate() error {
	if g.HalfExtent.X <= 0 || g.HalfExtent.Y <= 0 {
		return fmt.Errorf("circuit: half extent %s must be positive", g.HalfExtent)
	}
	if g.DeadZone.X < 0 || g.DeadZone.Y < 0 {
		return fmt.Errorf("circuit: dead zone %s must not be negative", g.DeadZone)
	}
	if g.DeadZone.X >= g.HalfExtent.X || g.DeadZone.Y >= g.HalfExtent.Y {
		return fmt.Errorf("circuit: dead zone %s must be smaller than half extent %s",
			g.DeadZone, g.HalfExtent)
	}
	return nil
}

// EdgesNear returns the edges whose dead-zone margin contains pos, in slot
// order. pos is relative to the cell center; it may lie outside the cell.
func (g DragGeometry) EdgesNear(pos core.Vec) []Direction {
	limitX := g.HalfExtent.X - g.DeadZone.X
	limitY := g.HalfExtent.Y - g.DeadZone.Y

	edges := make([]Direction, 0, 2)
	if pos.Y <= -limitY {
		edges = append(edges, DirUp)
	}
	if pos.X >= limitX {
		edges = append(edges, DirRight)
	}
	if pos.Y >= limitY {
		edges = append(edges, DirDown)
	}
	if pos.X <= -limitX {
		edges = append(edges, DirLeft)
	}
	return edges
}

// OnDragCrossedBorder translates a pointer leaving the cell into a connection
// attempt on the edge it left through. A crossing near two edges is a corner
// and is dropped; a crossing near no edge is ignored.
func (c *Cell) OnDragCrossedBorder(pos core.Vec, wantsData bool) error {
	edges := c.grid.drag.EdgesNear(pos)
	switch len(edges) {
	case 0, 2:
		return nil
	case 1:
		return c.AttemptConnection(edges[0], wantsData)
	default:
		return &EdgeProximityError{Coord: c.coord, Pos: pos, Edges: edges}
	}
}
