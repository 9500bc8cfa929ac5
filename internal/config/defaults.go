package config

import (
	_ "embed"
)

//go:embed defaults/circuit.yaml
var defaultCircuitYAML []byte

// DefaultCircuitConfig returns the built-in configuration.
// It mirrors defaults/circuit.yaml and is used if the embedded file fails to parse.
func DefaultCircuitConfig() CircuitConfig {
	return CircuitConfig{
		Input: InputConfig{
			DeadZoneX:  1.0,
			DeadZoneY:  0.75,
			DataButton: "right",
		},
		Layout: LayoutConfig{
			CellWidth:  5,
			CellHeight: 3,
		},
		Theme: ThemeConfig{
			Wire:          "bright_yellow",
			Data:          "bright_cyan",
			Part:          "bright_magenta",
			Blocked:       "red",
			Empty:         "gray",
			NotInSolution: "default",
		},
		Export: ExportConfig{
			CellPixels: 48,
			FontSize:   10,
			Labels:     false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCircuitYAML
}
