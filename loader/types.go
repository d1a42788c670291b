package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is a declarative experiment: a set of named dice and a game
// rolling some of them a fixed number of times.
type Definition struct {
	Dice []DieDefinition `yaml:"dice"`
	Game GameDefinition  `yaml:"game"`
}

// DieDefinition declares one die. Weights is an optional map of face
// label to weight override; faces absent from it keep the default 1.0.
type DieDefinition struct {
	Name    string             `yaml:"name"`
	Faces   []FaceValue        `yaml:"faces"`
	Weights map[string]float64 `yaml:"weights"`
}

// GameDefinition declares which dice are rolled together and how often.
// Names may repeat to roll several dice built from the same definition.
type GameDefinition struct {
	Dice  []string `yaml:"dice"`
	Rolls int      `yaml:"rolls"`
}

// FaceValue is a face label. Numeric YAML scalars are accepted and
// normalized to their decimal string form, so `faces: [1, 2, 3]` and
// `faces: ["1", "2", "3"]` declare the same die.
type FaceValue string

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FaceValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("face must be a scalar, got %s at line %d", kindName(value.Kind), value.Line)
	}
	*f = FaceValue(value.Value)
	return nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
