package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func init() {
	Parsers.Register(".yaml", "YAML", ParseYAML)
	Parsers.Register(".yml", "YAML", ParseYAML)
}

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Solution *YAMLRect         `yaml:"solution,omitempty"`
	Parts    []YAMLPart        `yaml:"parts"`
	Blocked  []YAMLEdge        `yaml:"blocked"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLRect is a rectangle given by its top-left cell and size.
type YAMLRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPart is a part cell and its pins keyed by direction name.
type YAMLPart struct {
	X    int               `yaml:"x"`
	Y    int               `yaml:"y"`
	Pins map[string]string `yaml:"pins"`
}

// YAMLEdge is a blocked cell edge.
type YAMLEdge struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	Dir string `yaml:"dir"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	raw := rawLevel{
		id:       yl.ID,
		name:     yl.Name,
		w:        yl.Size.W,
		h:        yl.Size.H,
		metadata: yl.Metadata,
	}
	if yl.Solution != nil {
		raw.solution = &rawRect{x: yl.Solution.X, y: yl.Solution.Y, w: yl.Solution.W, h: yl.Solution.H}
	}
	for _, p := range yl.Parts {
		raw.parts = append(raw.parts, rawPart{x: p.X, y: p.Y, pins: p.Pins})
	}
	for _, b := range yl.Blocked {
		raw.blocked = append(raw.blocked, rawEdge{x: b.X, y: b.Y, dir: b.Dir})
	}

	level, err := raw.build()
	if err != nil {
		return Level{}, fmt.Errorf("yaml level %q: %w", yl.ID, err)
	}
	return level, nil
}
