package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-circuit/internal/circuit"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels"
	"github.com/vovakirdan/tui-circuit/internal/circuit/levels/formats"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuiltinLevelsLoad(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 4 {
		t.Fatalf("len(LoadAll()) = %d, expected 4", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	// Every shipped level must build into a consistent grid.
	for _, lvl := range lvls {
		g, err := lvl.Build()
		if err != nil {
			t.Errorf("Build(%s) = %v", lvl.ID, err)
			continue
		}
		if err := g.Verify(); err != nil {
			t.Errorf("Verify(%s) = %v", lvl.ID, err)
		}
		g.Close()
	}
}

func TestLoaderSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "id: b\nsize: {w: 2, h: 2}\n")
	writeFile(t, dir, "nested/a.hcl", "id = \"a\"\nsize {\n  w = 3\n  h = 1\n}\n")
	writeFile(t, dir, "broken.yaml", "id: [unclosed\n")
	writeFile(t, dir, "zero.yml", "id: zero\nsize: {w: 0, h: 2}\n")
	writeFile(t, dir, "notes.txt", "not a level")

	ids, err := levels.NewLoader(dir).ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ListIDs() = %v, expected [a b]", ids)
	}
}

func TestLoadByID(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("03-walls")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Walls" || lvl.Width != 7 || lvl.Height != 5 {
		t.Errorf("level = %s %dx%d, expected Walls 7x5", lvl.Name, lvl.Width, lvl.Height)
	}
	if lvl.PinCount() != 2 {
		t.Errorf("PinCount() = %d, expected 2", lvl.PinCount())
	}
	if lvl.FilePath != "builtin/03-walls.hcl" {
		t.Errorf("FilePath = %q, expected builtin/03-walls.hcl", lvl.FilePath)
	}

	if _, err := levels.Builtin().LoadByID("missing"); err == nil {
		t.Error("LoadByID(missing) succeeded, expected error")
	}
}

func TestLoadPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.yaml", "id: one\nsize: {w: 1, h: 1}\n")
	lvl, err := levels.LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath failed: %v", err)
	}
	if lvl.ID != "one" || filepath.FromSlash(lvl.FilePath) != path {
		t.Errorf("LoadPath() = %q at %q", lvl.ID, lvl.FilePath)
	}
}

func TestBuildPlacesPartsAndBlocks(t *testing.T) {
	lvl := levels.Level{
		ID:     "t",
		Width:  3,
		Height: 2,
		Solution: &formats.Rect{
			Min: circuit.C(0, 0),
			Max: circuit.C(1, 1),
		},
		Parts: []formats.Part{{
			At:   circuit.C(0, 0),
			Pins: map[circuit.Direction]circuit.ConnectionType{circuit.DirRight: circuit.ConnWirePin},
		}},
		Blocked: []formats.Edge{{At: circuit.C(1, 1), Dir: circuit.DirUp}},
	}

	g, err := lvl.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer g.Close()

	part := g.Cell(circuit.C(0, 0))
	if part.Status() != circuit.StatusPart || part.Connection(circuit.DirRight) != circuit.ConnWirePin {
		t.Errorf("part cell = %s", part)
	}
	if got := g.Cell(circuit.C(1, 1)).Connection(circuit.DirUp); got != circuit.ConnBlocked {
		t.Errorf("(1,1) up = %s, expected blocked", got)
	}
	if got := g.Cell(circuit.C(1, 0)).Connection(circuit.DirDown); got != circuit.ConnBlocked {
		t.Errorf("(1,0) down = %s, expected mirrored block", got)
	}
	if got := g.Cell(circuit.C(2, 0)).Status(); got != circuit.StatusNotInSolution {
		t.Errorf("(2,0) status = %s, expected outside solution", got)
	}
}

func TestBuildFailureReleasesGrid(t *testing.T) {
	lvl := levels.Level{
		ID:      "t",
		Width:   2,
		Height:  1,
		Blocked: []formats.Edge{{At: circuit.C(0, 0), Dir: circuit.DirRight}},
		Parts: []formats.Part{{
			At:   circuit.C(1, 0),
			Pins: map[circuit.Direction]circuit.ConnectionType{circuit.DirLeft: circuit.ConnDataPin},
		}},
	}

	if _, err := lvl.Build(); !errors.Is(err, circuit.ErrInvalidPin) {
		t.Fatalf("Build() = %v, expected ErrInvalidPin", err)
	}

	g, err := circuit.NewGrid(1, 1)
	if err != nil {
		t.Fatalf("NewGrid after failed Build = %v, expected grid released", err)
	}
	g.Close()
}

func TestValidate(t *testing.T) {
	pin := map[circuit.Direction]circuit.ConnectionType{circuit.DirRight: circuit.ConnWirePin}
	base := func() levels.Level {
		return levels.Level{ID: "v", Width: 3, Height: 3}
	}

	tests := []struct {
		name   string
		modify func(l *levels.Level)
		code   string
	}{
		{"valid", func(l *levels.Level) {}, ""},
		{"missing id", func(l *levels.Level) { l.ID = "" }, levels.CodeMissingID},
		{"zero width", func(l *levels.Level) { l.Width = 0 }, levels.CodeInvalidSize},
		{"part out of bounds", func(l *levels.Level) {
			l.Parts = []formats.Part{{At: circuit.C(3, 0), Pins: pin}}
		}, levels.CodeOutOfBounds},
		{"blocked out of bounds", func(l *levels.Level) {
			l.Blocked = []formats.Edge{{At: circuit.C(-1, 0), Dir: circuit.DirUp}}
		}, levels.CodeOutOfBounds},
		{"duplicate part", func(l *levels.Level) {
			l.Parts = []formats.Part{{At: circuit.C(1, 1), Pins: pin}, {At: circuit.C(1, 1), Pins: pin}}
		}, levels.CodeDuplicatePart},
		{"part without pins", func(l *levels.Level) {
			l.Parts = []formats.Part{{At: circuit.C(1, 1)}}
		}, levels.CodeEmptyPart},
		{"pin on blocked edge", func(l *levels.Level) {
			l.Parts = []formats.Part{{At: circuit.C(0, 0), Pins: pin}}
			l.Blocked = []formats.Edge{{At: circuit.C(0, 0), Dir: circuit.DirRight}}
		}, levels.CodePinOnBlocked},
		{"pin on mirrored blocked edge", func(l *levels.Level) {
			l.Parts = []formats.Part{{At: circuit.C(0, 0), Pins: pin}}
			l.Blocked = []formats.Edge{{At: circuit.C(1, 0), Dir: circuit.DirLeft}}
		}, levels.CodePinOnBlocked},
		{"solution outside grid", func(l *levels.Level) {
			l.Solution = &formats.Rect{Min: circuit.C(0, 0), Max: circuit.C(3, 3)}
		}, levels.CodeBadSolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := base()
			tt.modify(&lvl)
			err := levels.Validate(lvl)

			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			var verr levels.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("Validate() code = %s, expected %s", verr.Code, tt.code)
			}
		})
	}
}
