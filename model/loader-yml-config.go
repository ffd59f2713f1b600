package model

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a yaml configuration file, applies the sequence checks on
// the attribute overrides and validates the result.
func LoadConfig(fn string) (*Config, error) {
	fn, err := filepath.Abs(fn)
	if err != nil {
		return nil, err
	}

	log.Printf("loading configuration from %s\n", fn)
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		if errors.Is(err, ErrConfig) || errors.Is(err, ErrAttributes) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, fn, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UnmarshalYAML decodes the override list from a sequence of single-key
// mappings:
//
//	attributes:
//	  - app:
//	      script: ['type="module"']
//	      link: ['media="all"']
//
// A mapping (or any other non-sequence node) in place of the sequence is
// rejected, as is an item that does not map exactly one entry name.
func (l *OverrideList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: attributes must be a sequence of per-entry mappings (line %d)", ErrConfig, node.Line)
	}
	out := make(OverrideList, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return fmt.Errorf("%w: each attributes item must map exactly one entry name (line %d)", ErrConfig, item.Line)
		}
		key, val := item.Content[0], item.Content[1]
		o := Override{Entry: key.Value}
		if err := val.Decode(&o.Attributes); err != nil {
			return fmt.Errorf("%w: entry '%s': %v", ErrAttributes, o.Entry, err)
		}
		out = append(out, o)
	}
	*l = out
	return nil
}
