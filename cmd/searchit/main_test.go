package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err := app.Run(append([]string{"searchit"}, args...))
	return out.String(), err
}

func TestSearchActionArguments(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		_, err := runApp(t)
		assert.ErrorContains(t, err, "query is required")
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := runApp(t, "query", "path", "extra")
		assert.ErrorContains(t, err, "too many arguments")
	})

	t.Run("missing root path", func(t *testing.T) {
		_, err := runApp(t, "query", filepath.Join(t.TempDir(), "absent"))
		assert.ErrorContains(t, err, "cannot access")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "loud", "query", ".")
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestSearchActionSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poem.txt")
	contents := "Rust:\nsafe, fast, productive.\nPick three.\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	t.Run("prints bare matched lines", func(t *testing.T) {
		out, err := runApp(t, "-n", "fast", path)
		require.NoError(t, err)
		assert.Equal(t, "2:safe, fast, productive.\n", out)
	})

	t.Run("invalid regex is fatal", func(t *testing.T) {
		_, err := runApp(t, "*", path)
		assert.Error(t, err)
	})

	t.Run("fixed strings disables the pattern language", func(t *testing.T) {
		starPath := filepath.Join(dir, "star.txt")
		require.NoError(t, os.WriteFile(starPath, []byte("a * b\nplain\n"), 0o644))

		out, err := runApp(t, "-F", "*", starPath)
		require.NoError(t, err)
		assert.Equal(t, "a * b\n", out)
	})
}

func TestSearchActionDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("needle here\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("just hay\n"), 0o644))

	t.Run("reports matching files with headers", func(t *testing.T) {
		out, err := runApp(t, "needle", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "In file: "+filepath.Join(dir, "a.txt"))
		assert.Contains(t, out, "needle here")
		assert.NotContains(t, out, "b.txt")
	})

	t.Run("zero matches is not an error", func(t *testing.T) {
		out, err := runApp(t, "absent-token", dir)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("ignore file excludes files", func(t *testing.T) {
		ignorePath := filepath.Join(dir, "ignore.yml")
		require.NoError(t, os.WriteFile(ignorePath, []byte("ignore:\n  - \"a.txt\"\n"), 0o644))

		out, err := runApp(t, "--ignore-file", ignorePath, "needle", dir)
		require.NoError(t, err)
		assert.NotContains(t, out, "a.txt")
	})
}
