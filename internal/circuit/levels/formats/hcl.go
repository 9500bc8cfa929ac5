package formats

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

func init() {
	Parsers.Register(".hcl", "HCL", ParseHCL)
}

// hclLevel is the top-level structure of an HCL level file.
type hclLevel struct {
	ID       string            `hcl:"id"`
	Name     string            `hcl:"name,optional"`
	Size     hclSize           `hcl:"size,block"`
	Solution *hclRect          `hcl:"solution,block"`
	Parts    []hclPart         `hcl:"part,block"`
	Blocked  []hclEdge         `hcl:"blocked,block"`
	Metadata map[string]string `hcl:"metadata,optional"`
}

type hclSize struct {
	W int `hcl:"w"`
	H int `hcl:"h"`
}

type hclRect struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
	W int `hcl:"w"`
	H int `hcl:"h"`
}

type hclPart struct {
	X    int               `hcl:"x"`
	Y    int               `hcl:"y"`
	Pins map[string]string `hcl:"pins"`
}

type hclEdge struct {
	X   int    `hcl:"x"`
	Y   int    `hcl:"y"`
	Dir string `hcl:"dir"`
}

// ParseHCL parses an HCL level file.
func ParseHCL(data []byte) (Level, error) {
	var hl hclLevel
	// The file name only selects native HCL syntax over HCL JSON.
	if err := hclsimple.Decode("level.hcl", data, nil, &hl); err != nil {
		return Level{}, fmt.Errorf("hcl decode: %w", err)
	}

	raw := rawLevel{
		id:       hl.ID,
		name:     hl.Name,
		w:        hl.Size.W,
		h:        hl.Size.H,
		metadata: hl.Metadata,
	}
	if hl.Solution != nil {
		raw.solution = &rawRect{x: hl.Solution.X, y: hl.Solution.Y, w: hl.Solution.W, h: hl.Solution.H}
	}
	for _, p := range hl.Parts {
		raw.parts = append(raw.parts, rawPart{x: p.X, y: p.Y, pins: p.Pins})
	}
	for _, b := range hl.Blocked {
		raw.blocked = append(raw.blocked, rawEdge{x: b.X, y: b.Y, dir: b.Dir})
	}

	level, err := raw.build()
	if err != nil {
		return Level{}, fmt.Errorf("hcl level %q: %w", hl.ID, err)
	}
	return level, nil
}
