package core

// MouseButton identifies which pointer button drives a drag.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ParseMouseButton maps a config name to a button.
func ParseMouseButton(s string) (MouseButton, bool) {
	switch s {
	case "left":
		return ButtonLeft, true
	case "right":
		return ButtonRight, true
	case "middle":
		return ButtonMiddle, true
	default:
		return ButtonNone, false
	}
}

// PointerEvent is a border-crossing event delivered to a cell.
// Pos is relative to the center of the cell being left.
type PointerEvent struct {
	Pos    Vec
	Button MouseButton
	Shift  bool // Modifier held during the drag
}

// WantsData reports whether the event selects the data wire kind.
// Either the configured data button or a shift-modified drag does.
func (e PointerEvent) WantsData(dataButton MouseButton) bool {
	return e.Button == dataButton || e.Shift
}
