package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels/formats"
)

// Validation codes.
const (
	CodeMissingID     = "MISSING_ID"
	CodeInvalidSize   = "INVALID_SIZE"
	CodeOutOfBounds   = "OUT_OF_BOUNDS"
	CodeDuplicatePart = "DUPLICATE_PART"
	CodePinOnBlocked  = "PIN_ON_BLOCKED"
	CodeBadSolution   = "BAD_SOLUTION"
	CodeEmptyPart     = "EMPTY_PART"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a level for structural problems that Build would otherwise
// hit halfway through. Once id and size are sound, every remaining problem is
// reported.
func Validate(l Level) error {
	if l.ID == "" {
		return ValidationError{Code: CodeMissingID, Message: "level has no id"}
	}
	if l.Width <= 0 || l.Height <= 0 {
		return ValidationError{
			Code:    CodeInvalidSize,
			Message: fmt.Sprintf("size %dx%d must be positive", l.Width, l.Height),
		}
	}

	var errs []error
	inBounds := func(c circuit.Coord) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < l.Width && c.Y < l.Height
	}

	if s := l.Solution; s != nil && (!inBounds(s.Min) || !inBounds(s.Max)) {
		errs = append(errs, ValidationError{
			Code:    CodeBadSolution,
			Message: fmt.Sprintf("solution %s..%s outside %dx%d grid", s.Min, s.Max, l.Width, l.Height),
		})
	}

	blocked := make(map[formats.Edge]bool)
	for _, b := range l.Blocked {
		if !inBounds(b.At) {
			errs = append(errs, ValidationError{
				Code:    CodeOutOfBounds,
				Message: fmt.Sprintf("blocked edge at %s outside grid", b.At),
			})
			continue
		}
		blocked[b] = true
		// The neighbor's mirrored slot is blocked too.
		if inv, err := b.Dir.Inverse(); err == nil {
			blocked[formats.Edge{At: b.At.Step(b.Dir), Dir: inv}] = true
		}
	}

	seen := make(map[circuit.Coord]bool)
	for _, p := range l.Parts {
		if !inBounds(p.At) {
			errs = append(errs, ValidationError{
				Code:    CodeOutOfBounds,
				Message: fmt.Sprintf("part at %s outside grid", p.At),
			})
			continue
		}
		if seen[p.At] {
			errs = append(errs, ValidationError{
				Code:    CodeDuplicatePart,
				Message: fmt.Sprintf("two parts at %s", p.At),
			})
			continue
		}
		seen[p.At] = true
		if len(p.Pins) == 0 {
			errs = append(errs, ValidationError{
				Code:    CodeEmptyPart,
				Message: fmt.Sprintf("part at %s has no pins", p.At),
			})
		}
		for _, dir := range circuit.Directions {
			if _, ok := p.Pins[dir]; ok && blocked[formats.Edge{At: p.At, Dir: dir}] {
				errs = append(errs, ValidationError{
					Code:    CodePinOnBlocked,
					Message: fmt.Sprintf("part at %s has a pin on blocked edge %s", p.At, dir),
				})
			}
		}
	}

	return errors.Join(errs...)
}
