package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-circuit/internal/circuit/levels"
	"github.com/vovakirdan/tui-circuit/internal/config"
)

// levelLoader returns the loader selected by --levels.
func levelLoader() *levels.Loader {
	if flagLevels != "" {
		return levels.NewLoader(flagLevels)
	}
	return levels.Builtin()
}

// loadConfig loads the config selected by --config.
func loadConfig() (config.CircuitConfig, error) {
	return config.Load(flagConfig)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "circuit",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens ~/.circuit/circuit.log for appending. The TUI owns the
// terminal while it runs, so log lines go there instead of stderr.
func openLogFile() (*os.File, error) {
	dir, err := config.StateDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create state directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "circuit.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
