// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration shared by the generator and
// indexer commands.
package types

const (
	// DefaultPageSize is the maximum number of labels per menu page.
	DefaultPageSize = 20

	// DefaultMainLabel is the generator's top-level label.
	DefaultMainLabel = "main"

	// DefaultIndexLabel is the indexer's top-level label.
	DefaultIndexLabel = "main_index"

	// TextExt is the extension of screenplay source files.
	TextExt = ".txt"
)

// LogConfig controls where and how diagnostics are logged.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is "text" or "json" for the stderr sink (default text).
	Format string `json:"format" yaml:"format"`

	// File enables an additional rotating JSON log at this path.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// RunConfig holds the settings common to both batch tools.
type RunConfig struct {
	// InputDir is walked recursively for source files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives generated files (default: current directory).
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// MainLabel names the top-level menu and its file.
	MainLabel string `json:"main_label" yaml:"main_label"`

	// PageSize is the maximum number of labels per menu page (default 20).
	PageSize int `json:"label_page_size" yaml:"label_page_size"`
}

// GeneratorConfig holds settings for converting screenplay text to scripts.
type GeneratorConfig struct {
	RunConfig `yaml:",inline"`

	// CharactersFile is an optional YAML file pre-seeding speaker identifiers.
	CharactersFile string `json:"config,omitempty" yaml:"config,omitempty"`
}

// IndexerConfig holds settings for indexing existing scripts.
type IndexerConfig struct {
	RunConfig `yaml:",inline"`

	// CatalogPath, when set, records every indexed label in a SQLite catalog.
	CatalogPath string `json:"catalog,omitempty" yaml:"catalog,omitempty"`
}
