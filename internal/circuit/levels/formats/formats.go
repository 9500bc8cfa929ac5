// Package formats provides pluggable level file format parsers.
// Each format registers itself under its file extensions in init().
package formats

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/registry"
)

// Parser turns the raw bytes of a level file into a Level.
type Parser func(data []byte) (Level, error)

// Parsers holds every registered format, keyed by lowercase extension.
var Parsers = registry.New[Parser]("level format")

// Rect is an inclusive rectangle of cells.
type Rect struct {
	Min circuit.Coord
	Max circuit.Coord
}

// Part is a part placement: the cell becomes a part with the given pins.
type Part struct {
	At   circuit.Coord
	Pins map[circuit.Direction]circuit.ConnectionType
}

// Edge names one side of one cell.
type Edge struct {
	At  circuit.Coord
	Dir circuit.Direction
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Solution *Rect // nil means the whole grid
	Parts    []Part
	Blocked  []Edge
	Metadata map[string]string
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (Level, error) {
	p, err := Parsers.Lookup(ext)
	if err != nil {
		return Level{}, err
	}
	return p(data)
}

// FormatExtensions returns supported file extensions, sorted.
func FormatExtensions() []string {
	infos := Parsers.List()
	exts := make([]string, len(infos))
	for i, info := range infos {
		exts[i] = info.ID
	}
	sort.Strings(exts)
	return exts
}

// rawLevel is the format-neutral shape both YAML and HCL decode into.
type rawLevel struct {
	id, name string
	w, h     int
	solution *rawRect
	parts    []rawPart
	blocked  []rawEdge
	metadata map[string]string
}

type rawRect struct{ x, y, w, h int }

type rawPart struct {
	x, y int
	pins map[string]string
}

type rawEdge struct {
	x, y int
	dir  string
}

// build converts names into typed values, failing on the first unknown one.
func (r rawLevel) build() (Level, error) {
	level := Level{
		ID:       r.id,
		Name:     r.name,
		Width:    r.w,
		Height:   r.h,
		Metadata: r.metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	if r.solution != nil {
		if r.solution.w <= 0 || r.solution.h <= 0 {
			return Level{}, fmt.Errorf("solution: size %dx%d must be positive", r.solution.w, r.solution.h)
		}
		level.Solution = &Rect{
			Min: circuit.C(r.solution.x, r.solution.y),
			Max: circuit.C(r.solution.x+r.solution.w-1, r.solution.y+r.solution.h-1),
		}
	}

	for i, p := range r.parts {
		part := Part{At: circuit.C(p.x, p.y), Pins: make(map[circuit.Direction]circuit.ConnectionType)}
		for dirName, pinName := range p.pins {
			dir, ok := circuit.ParseDirection(dirName)
			if !ok {
				return Level{}, fmt.Errorf("part %d: unknown direction %q", i, dirName)
			}
			pin, ok := circuit.ParseConnectionType(pinName)
			if !ok || !pin.IsPin() {
				return Level{}, fmt.Errorf("part %d: %q is not a pin type", i, pinName)
			}
			part.Pins[dir] = pin
		}
		level.Parts = append(level.Parts, part)
	}

	for i, b := range r.blocked {
		dir, ok := circuit.ParseDirection(b.dir)
		if !ok {
			return Level{}, fmt.Errorf("blocked %d: unknown direction %q", i, b.dir)
		}
		level.Blocked = append(level.Blocked, Edge{At: circuit.C(b.x, b.y), Dir: dir})
	}

	return level, nil
}
