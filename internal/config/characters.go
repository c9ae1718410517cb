// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads the YAML file that pre-seeds speaker identifiers.
//
// The file holds a single "characters" mapping of display name to script
// identifier:
//
//	characters:
//	  Eileen: e
//	  Lucy: l
//
// Document order is kept so the generated init block lists characters in
// the order the author wrote them.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rpy-tools/internal/rpy"
)

// Script is the parsed character configuration.
type Script struct {
	Characters CharacterList `yaml:"characters"`
}

// CharacterList is an ordered list decoded from a YAML mapping.
type CharacterList []rpy.Character

// UnmarshalYAML decodes a mapping node, keeping key order.
func (l *CharacterList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*l = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: characters must be a mapping of name to identifier", node.Line)
	}

	out := make(CharacterList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: character entries must be scalar name: identifier pairs", k.Line)
		}
		name := strings.TrimSpace(k.Value)
		id := strings.TrimSpace(v.Value)
		if name == "" || id == "" {
			return fmt.Errorf("line %d: character name and identifier must be non-empty", k.Line)
		}
		out = append(out, rpy.Character{Name: name, ID: id})
	}
	*l = out
	return nil
}

// Load reads and parses the character configuration at path. An empty
// file yields an empty configuration.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &s, nil
}
