// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index collects label declarations from existing script files and
// builds jump menus over them: one index file per script, each linking back
// to a main index that lists them all.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/rpy-tools/internal/batch"
	"github.com/pdiddy/rpy-tools/internal/label"
	"github.com/pdiddy/rpy-tools/internal/menu"
	"github.com/pdiddy/rpy-tools/internal/rpy"
	"github.com/pdiddy/rpy-tools/pkg/types"
)

// filePrefix is prepended to a script's file name to name its index file.
const filePrefix = "index_"

// Recorder receives the labels found in each indexed script.
type Recorder interface {
	Record(ctx context.Context, script, root string, labels []string) error
}

// Script is the outcome of indexing one script file.
type Script struct {
	Source string
	Target string
	Root   string
	Labels []string
}

// Batch accumulates state across an indexing run.
type Batch struct {
	batch.Result

	// Skipped counts scripts that declare no labels.
	Skipped int

	// Roots lists the root label of every index file written, in walk order.
	Roots []string

	// Labels is the total number of labels found.
	Labels int

	// MainFile is the path of the main index, or "" when none was written.
	MainFile string
}

// Options controls an indexing run.
type Options struct {
	OutputDir string
	MainLabel string
	PageSize  int
	Recorder  Recorder
}

// IndexFile reads the labels declared in srcPath and writes
// index_<name> under opts.OutputDir. A script without labels produces no
// file and a zero Script.
func IndexFile(srcPath string, opts Options) (Script, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return Script{}, fmt.Errorf("opening script: %w", err)
	}
	labels, err := rpy.ReadLabels(f)
	f.Close()
	if err != nil {
		return Script{}, fmt.Errorf("reading %s: %w", srcPath, err)
	}
	if len(labels) == 0 {
		return Script{Source: srcPath}, nil
	}

	target, root, err := WriteMenuFile(opts.OutputDir, filePrefix+filepath.Base(srcPath), labels, opts.MainLabel, opts.PageSize)
	if err != nil {
		return Script{}, err
	}
	return Script{Source: srcPath, Target: target, Root: root, Labels: labels}, nil
}

// WriteMenuFile writes a jump menu over labels to fileName under dir. The
// menu is filed under the normalized file stem and links back to back when
// it is non-empty. It returns the path written and the root label.
func WriteMenuFile(dir, fileName string, labels []string, back string, pageSize int) (string, string, error) {
	target, err := rpy.PrepareTarget(dir, fileName)
	if err != nil {
		return "", "", err
	}

	out, err := rpy.Create(target.Path)
	if err != nil {
		return "", "", err
	}
	defer out.Close()

	root, err := menu.Write(out, labels, target.Label, back, pageSize)
	if err != nil {
		return "", "", err
	}
	if err := out.Close(); err != nil {
		return "", "", fmt.Errorf("closing %s: %w", target.Path, err)
	}
	return target.Path, root, nil
}

// IndexDir indexes every .rpy file under inputDir. Per-file failures are
// logged and counted; they never stop the run.
func IndexDir(ctx context.Context, inputDir string, opts Options, logger *slog.Logger) (*Batch, error) {
	b := &Batch{}

	files, err := batch.Collect(inputDir, rpy.Ext, logger)
	if err != nil {
		return b, err
	}

	b.Result, err = batch.Run(ctx, files, logger, func(path string) error {
		s, err := IndexFile(path, opts)
		if err != nil {
			return err
		}
		logger.Info("source", "path", path, "labels", len(s.Labels))
		if s.Root == "" {
			b.Skipped++
			return nil
		}
		logger.Info("target", "path", s.Target, "labels", len(s.Labels))

		b.Labels += len(s.Labels)
		b.Roots = append(b.Roots, s.Root)

		if opts.Recorder != nil {
			if err := opts.Recorder.Record(ctx, path, s.Root, s.Labels); err != nil {
				logger.Warn("catalog record failed", "path", path, "err", err)
			}
		}
		return nil
	})
	return b, err
}

// Index runs a full indexing pass and writes the main index when at least
// one script declared labels.
func Index(ctx context.Context, cfg types.IndexerConfig, rec Recorder, logger *slog.Logger) (*Batch, error) {
	outDir, err := batch.OutputDir(cfg.OutputDir, logger)
	if err != nil {
		return nil, err
	}
	mainLabel := label.Normalize(cfg.MainLabel, types.DefaultIndexLabel)

	opts := Options{
		OutputDir: outDir,
		MainLabel: mainLabel,
		PageSize:  cfg.PageSize,
		Recorder:  rec,
	}

	b, err := IndexDir(ctx, cfg.InputDir, opts, logger)
	if err != nil {
		return b, err
	}

	logger.Info("batch complete",
		"files", len(b.Roots), "skipped", b.Skipped, "failed", b.Failed, "labels", b.Labels)

	if len(b.Roots) == 0 {
		return b, nil
	}

	logger.Info("writing main index file", "label", mainLabel, "labels", len(b.Roots))
	b.MainFile, _, err = WriteMenuFile(outDir, mainLabel+rpy.Ext, b.Roots, "", cfg.PageSize)
	if err != nil {
		return b, fmt.Errorf("writing main index file: %w", err)
	}
	logger.Info("target", "path", b.MainFile, "labels", len(b.Roots))
	return b, nil
}
