package render

import (
	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/config"
	"github.com/vovakirdan/tui-circuit/internal/core"
)

// Theme holds resolved colors for board elements.
type Theme struct {
	Wire          core.Color
	Data          core.Color
	Part          core.Color
	Blocked       core.Color
	Empty         core.Color
	NotInSolution core.Color
}

// NewTheme resolves theme color names. Unknown names become ColorDefault;
// config validation reports them earlier.
func NewTheme(tc config.ThemeConfig) Theme {
	parse := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}
	return Theme{
		Wire:          parse(tc.Wire),
		Data:          parse(tc.Data),
		Part:          parse(tc.Part),
		Blocked:       parse(tc.Blocked),
		Empty:         parse(tc.Empty),
		NotInSolution: parse(tc.NotInSolution),
	}
}

// DefaultTheme returns the theme of the default configuration.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultCircuitConfig().Theme)
}

// StatusColor returns the color used for a cell's body.
func (t Theme) StatusColor(s circuit.CellStatus) core.Color {
	switch s {
	case circuit.StatusWire:
		return t.Wire
	case circuit.StatusData:
		return t.Data
	case circuit.StatusPart:
		return t.Part
	case circuit.StatusNotInSolution:
		return t.NotInSolution
	default:
		return t.Empty
	}
}

// SlotColor returns the color used for a link or marker on one edge.
func (t Theme) SlotColor(ct circuit.ConnectionType) core.Color {
	switch {
	case ct == circuit.ConnBlocked:
		return t.Blocked
	case ct.IsWireKind():
		return t.Wire
	case ct.IsDataKind():
		return t.Data
	default:
		return t.Empty
	}
}
