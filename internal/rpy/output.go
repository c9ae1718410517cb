// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rpy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/rpy-tools/internal/label"
)

const defaultScriptName = "script" + Ext

// ScriptFileName derives the script file name for a source file: the last
// extension is replaced by Ext. Names made only of dots map to script.rpy.
func ScriptFileName(source string) string {
	name := strings.Trim(source, ".")
	if name == "" {
		return defaultScriptName
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return name + Ext
}

// Target is a resolved output file and the label its content is filed under.
type Target struct {
	Path  string
	Label string
}

// PrepareTarget creates dir if needed and resolves where fileName should
// be written. The label is the normalized file stem. An existing file is
// never overwritten: a millisecond-suffixed alternate name is chosen
// instead, while the label stays the same.
func PrepareTarget(dir, fileName string) (Target, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Target{}, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	stem := strings.TrimSuffix(fileName, Ext)
	t := Target{
		Path:  filepath.Join(dir, fileName),
		Label: label.Normalize(stem, ""),
	}

	if _, err := os.Stat(t.Path); err == nil {
		t.Path = filepath.Join(dir, t.Label+"_"+label.Millis()+Ext)
	}
	return t, nil
}

// Create opens a new script file at path. It fails if the file already
// exists.
func Create(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}
