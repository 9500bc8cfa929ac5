package circuit

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-circuit/internal/core"
)

var (
	// ErrNoInverse is returned for a direction value outside the four edges.
	ErrNoInverse = errors.New("circuit: direction has no inverse")

	// ErrGridAlreadyLive is returned by NewGrid while another grid is open.
	ErrGridAlreadyLive = errors.New("circuit: two live grid instances")

	// ErrInvalidDimensions is returned by NewGrid for a non-positive size.
	ErrInvalidDimensions = errors.New("circuit: grid dimensions must be positive")

	// ErrInvalidPin is returned by PlacePart for a non-pin value or a pin on a
	// blocked edge.
	ErrInvalidPin = errors.New("circuit: invalid pin")
)

// ConflictingWireTypeError reports an attempt to commit a wire slot on a data
// cell or a data slot on a wire cell. It is a programming error: the attempt
// and accept paths filter such requests before committing.
type ConflictingWireTypeError struct {
	Coord  Coord
	Dir    Direction
	Status CellStatus
	Value  ConnectionType
}

func (e *ConflictingWireTypeError) Error() string {
	return fmt.Sprintf("circuit: cell %s: cannot set %s slot to %s while status is %s",
		e.Coord, e.Dir, e.Value, e.Status)
}

// EdgeProximityError reports a drag position close to three or more edges at
// once, which a valid dead zone makes impossible.
type EdgeProximityError struct {
	Coord Coord
	Pos   core.Vec
	Edges []Direction
}

func (e *EdgeProximityError) Error() string {
	return fmt.Sprintf("circuit: cell %s: drag position %s is near %d edges %v; dead zone misconfigured",
		e.Coord, e.Pos, len(e.Edges), e.Edges)
}

// IsFatal reports whether err signals a broken invariant rather than an
// ordinary rejected move.
func IsFatal(err error) bool {
	var conflict *ConflictingWireTypeError
	var proximity *EdgeProximityError
	return errors.As(err, &conflict) ||
		errors.As(err, &proximity) ||
		errors.Is(err, ErrNoInverse) ||
		errors.Is(err, ErrGridAlreadyLive)
}
