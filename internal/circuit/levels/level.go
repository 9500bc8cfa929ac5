// Package levels loads level files and turns them into live grids.
// This package depends on circuit but circuit does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Solution *formats.Rect
	Parts    []formats.Part
	Blocked  []formats.Edge
	Metadata map[string]string
	FilePath string
}

func fromParsed(p formats.Level, path string) Level {
	return Level{
		ID:       p.ID,
		Name:     p.Name,
		Width:    p.Width,
		Height:   p.Height,
		Solution: p.Solution,
		Parts:    p.Parts,
		Blocked:  p.Blocked,
		Metadata: p.Metadata,
		FilePath: path,
	}
}

// Build creates the live grid for the level. Blocked edges are applied before
// parts so a pin can never end up on a blocked edge. On error the grid is
// closed again.
func (l *Level) Build(opts ...circuit.Option) (*circuit.Grid, error) {
	if l.Solution != nil {
		opts = append(opts, circuit.WithSolutionBounds(l.Solution.Min, l.Solution.Max))
	}
	g, err := circuit.NewGrid(l.Width, l.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}

	for _, b := range l.Blocked {
		if err := g.BlockEdge(b.At, b.Dir); err != nil {
			g.Close()
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
	}
	for _, p := range l.Parts {
		cell := g.Cell(p.At)
		if cell == nil {
			g.Close()
			return nil, fmt.Errorf("level %s: part %s out of bounds", l.ID, p.At)
		}
		if err := cell.PlacePart(p.Pins); err != nil {
			g.Close()
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
	}
	return g, nil
}

// PinCount returns the number of pins across all parts.
func (l *Level) PinCount() int {
	n := 0
	for _, p := range l.Parts {
		n += len(p.Pins)
	}
	return n
}
