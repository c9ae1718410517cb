// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rpy-tools/internal/logging"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.txt"))
	touch(t, filepath.Join(root, "a.txt"))
	touch(t, filepath.Join(root, "notes.md"))
	touch(t, filepath.Join(root, "act2", "c.txt"))
	touch(t, filepath.Join(root, "act2", "c.txt.bak"))

	files, err := Collect(root, ".txt", logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "act2", "c.txt"),
		filepath.Join(root, "b.txt"),
	}, files)
}

func TestCollect_NoExtensionFilter(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.txt"))
	touch(t, filepath.Join(root, "b.md"))

	files, err := Collect(root, "", logging.Discard())
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestCollect_Errors(t *testing.T) {
	_, err := Collect("  ", ".txt", logging.Discard())
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = Collect(filepath.Join(t.TempDir(), "missing"), ".txt", logging.Discard())
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(t.TempDir(), "a.txt")
	touch(t, file)
	_, err = Collect(file, ".txt", logging.Discard())
	assert.ErrorContains(t, err, "not a directory")
}

func TestRun(t *testing.T) {
	files := []string{"a.txt", "bad.txt", "c.txt"}
	var seen []string

	result, err := Run(context.Background(), files, logging.Discard(), func(path string) error {
		seen = append(seen, path)
		if strings.HasPrefix(path, "bad") {
			return errors.New("boom")
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, files, seen, "a failure does not stop the run")
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())
	assert.True(t, result.HasFailures())
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	result, err := Run(ctx, []string{"a", "b", "c"}, logging.Discard(), func(string) error {
		calls++
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, result.Processed)
}

func TestOutputDir(t *testing.T) {
	dir, err := OutputDir(" out ", logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "out", dir)

	wd := t.TempDir()
	testChdir(t, wd)
	dir, err = OutputDir("", logging.Discard())
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// testChdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
