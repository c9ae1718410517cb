//go:build mage

// Package main contains Mage build targets for rpy-tools developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	versionVar = "main.version"
)

// binaries maps each binary name to its command package.
var binaries = []struct {
	name string
	pkg  string
}{
	{"rpy-generator", "./cmd/rpy-generator"},
	{"rpy-indexer", "./cmd/rpy-indexer"},
}

// Build compiles both CLI binaries into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	ldflags := "-X " + versionVar + "=" + version()
	for _, b := range binaries {
		out := filepath.Join(binDir, b.name)
		if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, b.pkg); err != nil {
			return fmt.Errorf("go build %s: %w", b.name, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the unit tests. The catalog needs cgo for go-sqlite3.
func Test() error {
	return sh.RunWithV(map[string]string{"CGO_ENABLED": "1"}, "go", "test", "./...")
}

// Clean removes build output and the sample run directory.
func Clean() error {
	for _, dir := range []string{binDir, sampleOut} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// version returns the git description of HEAD, or "dev" outside a checkout.
func version() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || out == "" {
		return "dev"
	}
	return out
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	var prod, tests, words int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") || d.Name() == binDir {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(path) {
		case ".go":
			n, err := countLines(path)
			if err != nil {
				return err
			}
			if strings.HasSuffix(path, "_test.go") {
				tests += n
			} else {
				prod += n
			}
		case ".md":
			n, err := countWords(path)
			if err != nil {
				return err
			}
			words += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	fmt.Printf("Words (documentation):           %d\n", words)
	return nil
}

// countLines counts non-blank lines in the file at path.
func countLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}

func countWords(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return len(strings.Fields(string(data))), nil
}

// Sample builds both tools and runs them over testdata/sample: the
// generator writes chapter scripts, then the indexer indexes them into a
// catalog.
func Sample() error {
	mg.Deps(Build)

	gameDir := filepath.Join(sampleOut, "game")
	indexDir := filepath.Join(sampleOut, "index")
	if err := sh.Rm(sampleOut); err != nil {
		return err
	}

	if err := sh.RunV(filepath.Join(binDir, "rpy-generator"),
		"-i", sampleIn, "-o", gameDir, "-c", filepath.Join(sampleIn, "characters.yaml"), "-s", "2"); err != nil {
		return fmt.Errorf("running generator: %w", err)
	}
	if err := sh.RunV(filepath.Join(binDir, "rpy-indexer"),
		"-i", gameDir, "-o", indexDir, "--catalog", filepath.Join(sampleOut, "labels.db")); err != nil {
		return fmt.Errorf("running indexer: %w", err)
	}
	return sh.RunV(filepath.Join(binDir, "rpy-indexer"),
		"search", "--catalog", filepath.Join(sampleOut, "labels.db"), "chapter")
}

const (
	sampleIn  = "testdata/sample"
	sampleOut = "out/sample"
)
