// Package circuit implements the wire/data connection logic of a circuit
// board: a fixed grid of peer cells, each owning a status and four directional
// connection slots, kept consistent through a synchronous accept/reject
// handshake between neighbors.
//
// The package is UI-agnostic and deterministic. Rendering is delegated to a
// Visual sink and pointer input arrives as plain positions.
package circuit

import "fmt"

// CellStatus governs which connection kinds a cell may host.
type CellStatus uint8

const (
	StatusNotInSolution CellStatus = iota
	StatusEmpty
	StatusWire
	StatusData
	StatusPart
)

// String returns the lowercase name used in level files and logs.
func (s CellStatus) String() string {
	switch s {
	case StatusNotInSolution:
		return "not_in_solution"
	case StatusEmpty:
		return "empty"
	case StatusWire:
		return "wire"
	case StatusData:
		return "data"
	case StatusPart:
		return "part"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// ConnectionType is the state of one edge slot of a cell.
type ConnectionType uint8

const (
	ConnNone ConnectionType = iota
	ConnWire
	ConnWirePin
	ConnData
	ConnDataPin
	ConnBlocked
)

// String returns the lowercase name used in level files and logs.
func (t ConnectionType) String() string {
	switch t {
	case ConnNone:
		return "none"
	case ConnWire:
		return "wire"
	case ConnWirePin:
		return "wire_pin"
	case ConnData:
		return "data"
	case ConnDataPin:
		return "data_pin"
	case ConnBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("connection(%d)", uint8(t))
	}
}

// ParseConnectionType converts a level-file name to a ConnectionType.
func ParseConnectionType(s string) (ConnectionType, bool) {
	for t := ConnNone; t <= ConnBlocked; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return ConnNone, false
}

// IsPin reports whether the slot is fixed by part placement.
func (t ConnectionType) IsPin() bool {
	return t == ConnWirePin || t == ConnDataPin
}

// IsWireKind reports whether the slot carries a wire (plain or pinned).
func (t ConnectionType) IsWireKind() bool {
	return t == ConnWire || t == ConnWirePin
}

// IsDataKind reports whether the slot carries data (plain or pinned).
func (t ConnectionType) IsDataKind() bool {
	return t == ConnData || t == ConnDataPin
}

// IsOpen reports whether the slot holds no connection at all.
func (t ConnectionType) IsOpen() bool {
	return t == ConnNone || t == ConnBlocked
}

// Direction names one of the four edges of a cell.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in slot order.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection converts a level-file name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirUp, false
}

// Valid reports whether d is one of the four edges.
func (d Direction) Valid() bool {
	return d <= DirLeft
}

// Inverse returns the edge facing d across a shared border.
func (d Direction) Inverse() (Direction, error) {
	switch d {
	case DirUp:
		return DirDown, nil
	case DirRight:
		return DirLeft, nil
	case DirDown:
		return DirUp, nil
	case DirLeft:
		return DirRight, nil
	default:
		return d, fmt.Errorf("%w: %s", ErrNoInverse, d)
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Coord is a grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one step in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
