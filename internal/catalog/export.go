// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportScript is one script and its labels in an export.
type ExportScript struct {
	Path      string   `json:"path" yaml:"path"`
	Root      string   `json:"root" yaml:"root"`
	IndexedAt string   `json:"indexed_at" yaml:"indexed_at"`
	Labels    []string `json:"labels" yaml:"labels"`
}

// ExportYAML writes the whole catalog to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	scripts, err := s.exportScripts(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(scripts); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the whole catalog to w as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	scripts, err := s.exportScripts(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scripts); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func (s *Store) exportScripts(ctx context.Context) ([]ExportScript, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.path, s.root_label, s.indexed_at, l.label
		 FROM scripts s LEFT JOIN labels l ON l.script_path = s.path
		 ORDER BY s.path, l.position`)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	defer rows.Close()

	scripts := []ExportScript{}
	for rows.Next() {
		var (
			path, root, at string
			lbl            *string
		)
		if err := rows.Scan(&path, &root, &at, &lbl); err != nil {
			return nil, fmt.Errorf("scanning export row: %w", err)
		}
		if n := len(scripts); n == 0 || scripts[n-1].Path != path {
			scripts = append(scripts, ExportScript{Path: path, Root: root, IndexedAt: at, Labels: []string{}})
		}
		if lbl != nil {
			last := &scripts[len(scripts)-1]
			last.Labels = append(last.Labels, *lbl)
		}
	}
	return scripts, rows.Err()
}
