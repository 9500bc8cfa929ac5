package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-circuit/internal/core"
	"github.com/vovakirdan/tui-circuit/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a level",
	Long: `Start playing the given level, or pick one from a list.

Controls:
  Left drag          - Lay or remove wire across a cell border
  Right drag         - Lay or remove data (configurable: input.data_button)
  Shift + drag       - Data
  R                  - Reset level
  N / P              - Next / previous level
  Ctrl+Y             - Copy board to clipboard
  Ctrl+S             - Save board as PNG
  ?                  - More keys
  Q/Ctrl+C           - Quit

Examples:
  circuit play
  circuit play 02-data-line
  circuit play --levels ./my-levels --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lvls, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		return fmt.Errorf("no levels found in %s", levelLoader().Root)
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	// Get terminal size for the first frame
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	start := 0
	if len(args) == 1 {
		start = -1
		for i, l := range lvls {
			if l.ID == args[0] {
				start = i
				break
			}
		}
		if start < 0 {
			return fmt.Errorf("unknown level %q (run 'circuit list' to see available levels)", args[0])
		}
	} else {
		index, ok, menuErr := tui.RunLevelMenu(lvls, rc)
		if menuErr != nil {
			return menuErr
		}
		// User quit the picker
		if !ok {
			return nil
		}
		start = index
	}

	logger.Info("session started", "level", lvls[start].ID, "levels", len(lvls))
	if err := tui.RunBoard(lvls, start, cfg, rc, logger); err != nil {
		logger.Error("session ended", "error", err)
		return fmt.Errorf("running board: %w", err)
	}
	logger.Info("session ended")
	return nil
}
