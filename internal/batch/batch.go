// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch walks an input tree and runs a per-file step over every
// matching file. A failing file is logged and counted; the run continues
// with the next one.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when no input directory was given.
var ErrNoInput = errors.New("input directory path is not defined")

// Result counts the outcome of a batch run.
type Result struct {
	Processed int
	Failed    int
}

// Total returns the number of files attempted.
func (r Result) Total() int {
	return r.Processed + r.Failed
}

// HasFailures reports whether any file failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Collect returns every regular file under root whose name ends in ext, in
// lexical walk order. The list is taken up front so files written during
// the run are never picked up. Unreadable subdirectories are logged and
// skipped; an unreadable root is an error.
func Collect(root, ext string, logger *slog.Logger) ([]string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, ErrNoInput
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Error("skipping unreadable path", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if ext != "" && !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// Run calls step for each file in order. A step error is logged with the
// file path and counted. Cancellation is checked between files.
func Run(ctx context.Context, files []string, logger *slog.Logger, step func(path string) error) (Result, error) {
	var result Result
	for _, path := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := step(path); err != nil {
			logger.Error("error processing file", "path", path, "err", err)
			result.Failed++
			continue
		}
		result.Processed++
	}
	return result, nil
}

// OutputDir returns dir, or the working directory when dir is empty.
func OutputDir(dir string, logger *slog.Logger) (string, error) {
	if dir = strings.TrimSpace(dir); dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	logger.Info("output directory path is not defined, using current", "dir", wd)
	return wd, nil
}
