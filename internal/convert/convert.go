// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns plain-text screenplay files into script files and
// writes the main file that declares every speaker and links to every
// chapter through a paginated jump menu.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/rpy-tools/internal/batch"
	"github.com/pdiddy/rpy-tools/internal/config"
	"github.com/pdiddy/rpy-tools/internal/label"
	"github.com/pdiddy/rpy-tools/internal/menu"
	"github.com/pdiddy/rpy-tools/internal/rpy"
	"github.com/pdiddy/rpy-tools/internal/screenplay"
	"github.com/pdiddy/rpy-tools/pkg/types"
)

// Chapter is the outcome of converting one source file.
type Chapter struct {
	Source string
	Target string
	Label  string
	Lines  int
}

// Batch accumulates state across a conversion run. Chapters and
// Characters are threaded through every per-file step.
type Batch struct {
	batch.Result

	Chapters   []string
	Characters *screenplay.Characters
	Lines      int

	// MainFile is the path of the main script, or "" when none was written.
	MainFile string
}

// ConvertFile converts the screenplay at srcPath into a script file under
// outDir, assigning speaker identifiers through chars.
func ConvertFile(srcPath, outDir string, chars *screenplay.Characters) (Chapter, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return Chapter{}, fmt.Errorf("opening source: %w", err)
	}
	lines, err := screenplay.Parse(f)
	f.Close()
	if err != nil {
		return Chapter{}, fmt.Errorf("parsing %s: %w", srcPath, err)
	}

	target, err := rpy.PrepareTarget(outDir, rpy.ScriptFileName(filepath.Base(srcPath)))
	if err != nil {
		return Chapter{}, err
	}

	out, err := rpy.Create(target.Path)
	if err != nil {
		return Chapter{}, err
	}
	defer out.Close()

	sw := rpy.NewWriter(out)
	sw.Label(target.Label)
	for _, l := range lines {
		id := ""
		if l.Speaker != "" {
			id = chars.ID(l.Speaker)
		}
		sw.Say(id, l.Phrase)
	}
	if len(lines) == 0 {
		sw.Pass()
	}
	if err := sw.Flush(); err != nil {
		return Chapter{}, fmt.Errorf("writing %s: %w", target.Path, err)
	}
	if err := out.Close(); err != nil {
		return Chapter{}, fmt.Errorf("closing %s: %w", target.Path, err)
	}

	return Chapter{Source: srcPath, Target: target.Path, Label: target.Label, Lines: len(lines)}, nil
}

// ConvertDir converts every .txt file under inputDir. Per-file failures are
// logged and counted; they never stop the run.
func ConvertDir(ctx context.Context, inputDir, outDir string, chars *screenplay.Characters, logger *slog.Logger) (*Batch, error) {
	b := &Batch{Characters: chars}

	files, err := batch.Collect(inputDir, types.TextExt, logger)
	if err != nil {
		return b, err
	}

	b.Result, err = batch.Run(ctx, files, logger, func(path string) error {
		logger.Debug("source", "path", path)
		ch, err := ConvertFile(path, outDir, b.Characters)
		if err != nil {
			return err
		}
		logger.Info("converted", "source", ch.Source, "target", ch.Target, "chapter", ch.Label, "lines", ch.Lines)
		b.Lines += ch.Lines
		b.Chapters = append(b.Chapters, ch.Label)
		return nil
	})
	return b, err
}

// WriteMain writes <mainLabel>.rpy into outDir: an init block declaring
// every character, followed by a jump menu over chapters. It returns the
// path written.
func WriteMain(outDir, mainLabel string, chapters []string, characters []rpy.Character, pageSize int) (string, error) {
	target, err := rpy.PrepareTarget(outDir, mainLabel+rpy.Ext)
	if err != nil {
		return "", err
	}

	out, err := rpy.Create(target.Path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	sw := rpy.NewWriter(out)
	sw.Init(mainLabel, characters)
	menu.Render(sw, menu.Build(chapters, mainLabel, "", pageSize))
	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("writing %s: %w", target.Path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", target.Path, err)
	}
	return target.Path, nil
}

// Generate runs a full conversion: it seeds speakers from the optional
// characters file, converts every source file, and writes the main file
// when at least one chapter was produced.
func Generate(ctx context.Context, cfg types.GeneratorConfig, logger *slog.Logger) (*Batch, error) {
	outDir, err := batch.OutputDir(cfg.OutputDir, logger)
	if err != nil {
		return nil, err
	}
	mainLabel := label.Normalize(cfg.MainLabel, types.DefaultMainLabel)

	var seed []rpy.Character
	if cfg.CharactersFile != "" {
		sc, err := config.Load(cfg.CharactersFile)
		if err != nil {
			return nil, err
		}
		seed = sc.Characters
	}

	b, err := ConvertDir(ctx, cfg.InputDir, outDir, screenplay.NewCharacters(seed), logger)
	if err != nil {
		return b, err
	}

	logger.Info("batch complete",
		"files", b.Processed, "failed", b.Failed,
		"characters", b.Characters.Len(), "lines", b.Lines)

	if len(b.Chapters) == 0 {
		return b, nil
	}

	logger.Info("writing main script file", "label", mainLabel, "labels", len(b.Chapters))
	b.MainFile, err = WriteMain(outDir, mainLabel, b.Chapters, b.Characters.List(), cfg.PageSize)
	if err != nil {
		return b, fmt.Errorf("writing main script file: %w", err)
	}
	logger.Info("target", "path", b.MainFile, "labels", len(b.Chapters))
	return b, nil
}
