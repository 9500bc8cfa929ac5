package circuit

import "fmt"

// Cell is one grid position. It owns its status and its four connection
// slots; neighbors may change them only through TryAcceptConnection.
type Cell struct {
	grid   *Grid
	coord  Coord
	status CellStatus
	slots  [4]ConnectionType
}

// Coord returns the cell's fixed grid position.
func (c *Cell) Coord() Coord {
	return c.coord
}

// Status returns the cell's current status.
func (c *Cell) Status() CellStatus {
	return c.status
}

// Connection returns the slot facing dir. Invalid directions read as None.
func (c *Cell) Connection(dir Direction) ConnectionType {
	if !dir.Valid() {
		return ConnNone
	}
	return c.slots[dir]
}

// Connections returns a copy of all four slots, indexed by Direction.
func (c *Cell) Connections() [4]ConnectionType {
	return c.slots
}

// Connected reports whether the slot facing dir carries a wire or data link.
func (c *Cell) Connected(dir Direction) bool {
	t := c.Connection(dir)
	return t.IsWireKind() || t.IsDataKind()
}

// String returns a compact description used in logs.
func (c *Cell) String() string {
	return fmt.Sprintf("cell%s[%s u=%s r=%s d=%s l=%s]", c.coord, c.status,
		c.slots[DirUp], c.slots[DirRight], c.slots[DirDown], c.slots[DirLeft])
}

// conflicts reports whether a cell with the given status may not host want.
// Empty and NotInSolution cells never conflict.
func conflicts(status CellStatus, want ConnectionType) bool {
	switch status {
	case StatusData:
		return want.IsWireKind()
	case StatusWire:
		return want.IsDataKind()
	default:
		return false
	}
}

// OnConnectionChanged commits newValue into the slot facing dir and brings the
// status back in line with the slots. It is the only path through which a
// slot mutation takes effect.
//
// A wire value on a data cell (or the reverse) is refused with a
// *ConflictingWireTypeError and nothing changes.
func (c *Cell) OnConnectionChanged(dir Direction, newValue ConnectionType) error {
	if !dir.Valid() {
		return fmt.Errorf("cell %s: %w: %s", c.coord, ErrNoInverse, dir)
	}
	if conflicts(c.status, newValue) {
		return &ConflictingWireTypeError{Coord: c.coord, Dir: dir, Status: c.status, Value: newValue}
	}

	before := c.status
	old := c.slots[dir]
	c.slots[dir] = newValue
	c.settleStatus(newValue)

	if old == newValue && before == c.status {
		return nil
	}

	if before == StatusNotInSolution && c.status != StatusNotInSolution {
		c.grid.expander.ExpandSolution(c)
	}
	c.grid.visual.Refresh(c)
	return nil
}

// settleStatus applies the promotion and empty-reversion rules after a slot
// received newValue.
func (c *Cell) settleStatus(newValue ConnectionType) {
	if c.status == StatusNotInSolution || c.status == StatusEmpty {
		switch {
		case newValue.IsWireKind():
			c.status = StatusWire
		case newValue.IsDataKind():
			c.status = StatusData
		}
	}

	if c.status != StatusWire && c.status != StatusData {
		return
	}
	for _, s := range c.slots {
		if !s.IsOpen() {
			return
		}
	}
	c.status = StatusEmpty
}

// AttemptConnection toggles the connection on the edge facing dir on behalf of
// the user. wantsData selects the data kind instead of the wire kind.
//
// Moves the rules forbid are silently ignored: pinned or blocked slots, a
// request of the other kind against an existing link, a kind the cell's
// status excludes, the grid border, or a neighbor that refuses. Only when the
// neighbor accepts the mirrored request is the local slot committed.
func (c *Cell) AttemptConnection(dir Direction, wantsData bool) error {
	if !dir.Valid() {
		return fmt.Errorf("cell %s: %w: %s", c.coord, ErrNoInverse, dir)
	}

	var desired ConnectionType
	switch c.slots[dir] {
	case ConnNone:
		desired = ConnWire
		if wantsData {
			desired = ConnData
		}
	case ConnWire:
		if wantsData {
			return nil
		}
		desired = ConnNone
	case ConnData:
		if !wantsData {
			return nil
		}
		desired = ConnNone
	default:
		// Pins and blocked edges belong to part placement.
		return nil
	}

	if conflicts(c.status, desired) {
		return nil
	}

	neighbor := c.FindNeighbor(dir)
	if neighbor == nil {
		return nil
	}

	from, err := dir.Inverse()
	if err != nil {
		return fmt.Errorf("cell %s: %w", c.coord, err)
	}

	accepted, err := neighbor.TryAcceptConnection(desired, from)
	if err != nil {
		return fmt.Errorf("cell %s -> %s: %w", c.coord, neighbor.coord, err)
	}
	if !accepted {
		return nil
	}
	return c.OnConnectionChanged(dir, desired)
}

// TryAcceptConnection handles a neighbor's request to mirror a connection on
// the slot facing from. It returns true once the request is committed.
//
// A pinned slot keeps its pin: a request of the same kind (or a removal)
// is accepted without changing it, a request of the other kind is refused.
func (c *Cell) TryAcceptConnection(desired ConnectionType, from Direction) (bool, error) {
	if !from.Valid() {
		return false, fmt.Errorf("cell %s: %w: %s", c.coord, ErrNoInverse, from)
	}
	if conflicts(c.status, desired) {
		return false, nil
	}

	switch slot := c.slots[from]; {
	case slot == ConnBlocked:
		return false, nil
	case slot.IsPin():
		ok := desired == ConnNone ||
			(slot == ConnWirePin && desired == ConnWire) ||
			(slot == ConnDataPin && desired == ConnData)
		return ok, nil
	}

	if err := c.OnConnectionChanged(from, desired); err != nil {
		return false, err
	}
	return true, nil
}

// FindNeighbor returns the adjacent cell across dir, or nil past the grid
// border. There is no wraparound.
func (c *Cell) FindNeighbor(dir Direction) *Cell {
	if !dir.Valid() {
		return nil
	}
	return c.grid.Cell(c.coord.Step(dir))
}

// PlacePart turns the cell into a part with the given pins. Only WirePin and
// DataPin values are accepted, and a pin may not sit on a blocked edge.
// Slots not named in pins are left as they are.
func (c *Cell) PlacePart(pins map[Direction]ConnectionType) error {
	for dir, pin := range pins {
		if !dir.Valid() {
			return fmt.Errorf("cell %s: %w: direction %s", c.coord, ErrInvalidPin, dir)
		}
		if !pin.IsPin() {
			return fmt.Errorf("cell %s: %w: %s is not a pin", c.coord, ErrInvalidPin, pin)
		}
		if c.slots[dir] == ConnBlocked {
			return fmt.Errorf("cell %s: %w: %s edge is blocked", c.coord, ErrInvalidPin, dir)
		}
	}

	c.status = StatusPart
	for dir, pin := range pins {
		c.slots[dir] = pin
	}
	c.grid.visual.Refresh(c)
	return nil
}

// Block permanently closes the edge facing dir. A wire or data cell left
// without links reverts to empty.
func (c *Cell) Block(dir Direction) {
	if !dir.Valid() || c.slots[dir] == ConnBlocked {
		return
	}
	c.slots[dir] = ConnBlocked
	c.settleStatus(ConnBlocked)
	c.grid.visual.Refresh(c)
}
