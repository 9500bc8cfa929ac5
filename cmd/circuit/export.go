package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/render"
)

var (
	flagOutput  string
	flagConnect []string
	flagLabels  bool
)

var exportCmd = &cobra.Command{
	Use:   "export <level-id>",
	Short: "Render a level to PNG",
	Long: `Builds a level, optionally applies scripted moves, and writes the board
as a PNG image.

Each --connect move is "x,y,dir,kind": the cell at x,y attempts a link on its
dir edge (up, right, down, left) of the given kind (wire or data), exactly as a
mouse drag across that border would.

Examples:
  circuit export 01-first-wire -o first.png
  circuit export 01-first-wire -o solved.png --connect 1,1,left,wire --connect 1,1,right,wire`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output PNG path (required)")
	exportCmd.Flags().StringArrayVar(&flagConnect, "connect", nil, "Move x,y,dir,kind to apply before export (repeatable)")
	exportCmd.Flags().BoolVar(&flagLabels, "labels", false, "Draw cell coordinates")
	//nolint:errcheck // Flag is defined above
	exportCmd.MarkFlagRequired("output")
}

// move is one scripted connection attempt.
type move struct {
	at   circuit.Coord
	dir  circuit.Direction
	data bool
}

// parseMove parses "x,y,dir,kind".
func parseMove(s string) (move, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return move{}, fmt.Errorf("move %q: expected x,y,dir,kind", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return move{}, fmt.Errorf("move %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return move{}, fmt.Errorf("move %q: bad y: %w", s, err)
	}
	dir, ok := circuit.ParseDirection(strings.TrimSpace(parts[2]))
	if !ok {
		return move{}, fmt.Errorf("move %q: unknown direction %q", s, parts[2])
	}

	var data bool
	switch strings.TrimSpace(parts[3]) {
	case "wire":
	case "data":
		data = true
	default:
		return move{}, fmt.Errorf("move %q: kind must be wire or data", s)
	}
	return move{at: circuit.C(x, y), dir: dir, data: data}, nil
}

// applyMoves runs each move against g.
func applyMoves(g *circuit.Grid, moves []move) error {
	for _, mv := range moves {
		cell := g.Cell(mv.at)
		if cell == nil {
			return fmt.Errorf("move at %s: out of bounds", mv.at)
		}
		if err := cell.AttemptConnection(mv.dir, mv.data); err != nil {
			return fmt.Errorf("move at %s %s: %w", mv.at, mv.dir, err)
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	moves := make([]move, 0, len(flagConnect))
	for _, s := range flagConnect {
		mv, err := parseMove(s)
		if err != nil {
			return err
		}
		moves = append(moves, mv)
	}

	lvl, err := levelLoader().LoadByID(args[0])
	if err != nil {
		return err
	}

	tracker := render.NewTracker()
	g, err := lvl.Build(circuit.WithVisual(tracker))
	if err != nil {
		return err
	}
	defer g.Close()

	if err := applyMoves(g, moves); err != nil {
		if circuit.IsFatal(err) {
			logger.Error("board invariant broken", "level", lvl.ID, "error", err)
		}
		return err
	}
	logger.Debug("moves applied", "level", lvl.ID, "moves", len(moves), "refreshes", tracker.Total())

	export := cfg.Export
	if cmd.Flags().Changed("labels") {
		export.Labels = flagLabels
	}
	exp := render.NewPNGExporter(export, render.NewTheme(cfg.Theme))
	if err := exp.SavePNG(flagOutput, g); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}

	stats := g.Stats()
	logger.Info("exported", "level", lvl.ID, "path", flagOutput, "wires", stats.Wires, "data", stats.Data)
	return nil
}
