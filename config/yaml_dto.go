package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type YAMLCatalog struct {
	Entities []YAMLEntity `yaml:"entities"`
}

type YAMLEntity struct {
	Name    string         `yaml:"name"`
	Extends string         `yaml:"extends"`
	Expose  []YAMLExposure `yaml:"expose"`
}

type YAMLExposure struct {
	Name    string         `yaml:"name"`
	Names   []string       `yaml:"names"`
	As      string         `yaml:"as"`
	Using   string         `yaml:"using"`
	From    string         `yaml:"from"`
	Compute string         `yaml:"compute"`
	If      *YAMLCondition `yaml:"if"`
	Unless  *YAMLCondition `yaml:"unless"`
	Meta    map[string]any `yaml:"meta"`
}

// YAMLCondition is either a mapping of expected option values or the name of
// a registered predicate.
type YAMLCondition struct {
	Flags     map[string]any
	Predicate string
}

func (c *YAMLCondition) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Predicate = value.Value
		return nil
	case yaml.MappingNode:
		return value.Decode(&c.Flags)
	}
	return fmt.Errorf("line %d: condition must be a mapping or a predicate name", value.Line)
}
