package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// touch creates path with the given modification time.
func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestRun(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("prints only newer prerequisites", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.o")
		older := filepath.Join(dir, "old.c")
		newer := filepath.Join(dir, "new.c")
		touch(t, target, base)
		touch(t, older, base.Add(-time.Hour))
		touch(t, newer, base.Add(time.Hour))

		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{target, older, newer}))
		assert.Equal(t, newer+"\n", out.String())
	})

	t.Run("missing target makes every existing prerequisite newer", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.c")
		b := filepath.Join(dir, "b.c")
		touch(t, a, base)
		touch(t, b, base)

		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{filepath.Join(dir, "missing"), a, b}))
		assert.Equal(t, a+" "+b+"\n", out.String())
	})

	t.Run("missing prerequisite is never newer", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.o")
		touch(t, target, base)

		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{target, filepath.Join(dir, "missing.c")}))
		assert.Empty(t, out.String())
	})

	t.Run("no output when nothing is newer", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "out.o")
		prereq := filepath.Join(dir, "a.c")
		touch(t, target, base)
		touch(t, prereq, base)

		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{target, prereq}))
		assert.Empty(t, out.String())
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, run(out, []string{"-h"}))
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("usage error surfaces the exit code", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := run(out, nil)
		require.Error(t, err)
	})
}
