// Package config provides YAML-based configuration loading for the circuit
// board: input dead zones, cell layout, theme colors and image export.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/core"
)

// CircuitConfig contains all configuration for the circuit board.
type CircuitConfig struct {
	Input  InputConfig  `yaml:"input"`
	Layout LayoutConfig `yaml:"layout"`
	Theme  ThemeConfig  `yaml:"theme"`
	Export ExportConfig `yaml:"export"`
}

// InputConfig defines how pointer drags become connection attempts.
type InputConfig struct {
	DeadZoneX  float64 `yaml:"dead_zone_x"` // Corner margin along X, in characters
	DeadZoneY  float64 `yaml:"dead_zone_y"` // Corner margin along Y, in lines
	DataButton string  `yaml:"data_button"` // "left", "right" or "middle"
}

// LayoutConfig defines how large one cell is drawn in the terminal.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ThemeConfig maps cell statuses and slot kinds to color names.
type ThemeConfig struct {
	Wire          string `yaml:"wire"`
	Data          string `yaml:"data"`
	Part          string `yaml:"part"`
	Blocked       string `yaml:"blocked"`
	Empty         string `yaml:"empty"`
	NotInSolution string `yaml:"not_in_solution"`
}

// ExportConfig defines PNG export parameters.
type ExportConfig struct {
	CellPixels int     `yaml:"cell_pixels"`
	FontSize   float64 `yaml:"font_size"`
	Labels     bool    `yaml:"labels"` // Draw coordinates in each tile
}

// DragGeometry returns the cell box and dead zone in terminal units.
func (c CircuitConfig) DragGeometry() circuit.DragGeometry {
	return circuit.DragGeometry{
		HalfExtent: core.NewRect(0, 0, c.Layout.CellWidth, c.Layout.CellHeight).HalfExtent(),
		DeadZone:   core.V(c.Input.DeadZoneX, c.Input.DeadZoneY),
	}
}

// DataButton returns the button that selects data drags.
// Unknown names fall back to the right button.
func (c CircuitConfig) DataButton() core.MouseButton {
	if b, ok := core.ParseMouseButton(c.Input.DataButton); ok {
		return b
	}
	return core.ButtonRight
}

// Validate reports every problem found in the configuration.
func (c CircuitConfig) Validate() error {
	var errs []error

	if c.Layout.CellWidth < 1 || c.Layout.CellHeight < 1 {
		errs = append(errs, fmt.Errorf("layout: cell size %dx%d must be at least 1x1",
			c.Layout.CellWidth, c.Layout.CellHeight))
	} else if err := c.DragGeometry().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("input: %w", err))
	}

	if _, ok := core.ParseMouseButton(c.Input.DataButton); !ok {
		errs = append(errs, fmt.Errorf("input: unknown data_button %q", c.Input.DataButton))
	}

	theme := map[string]string{
		"wire":            c.Theme.Wire,
		"data":            c.Theme.Data,
		"part":            c.Theme.Part,
		"blocked":         c.Theme.Blocked,
		"empty":           c.Theme.Empty,
		"not_in_solution": c.Theme.NotInSolution,
	}
	for _, key := range []string{"wire", "data", "part", "blocked", "empty", "not_in_solution"} {
		if _, ok := core.ParseColor(theme[key]); !ok {
			errs = append(errs, fmt.Errorf("theme: unknown color %q for %s", theme[key], key))
		}
	}

	if c.Export.CellPixels < 4 {
		errs = append(errs, fmt.Errorf("export: cell_pixels %d must be at least 4", c.Export.CellPixels))
	}
	if c.Export.FontSize <= 0 {
		errs = append(errs, errors.New("export: font_size must be positive"))
	}

	return errors.Join(errs...)
}
