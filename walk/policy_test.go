package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIgnorePolicy(t *testing.T) {
	t.Run("valid patterns", func(t *testing.T) {
		policy, err := NewIgnorePolicy("vendor/**", "*.min.js")
		require.NoError(t, err)
		assert.NotNil(t, policy)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewIgnorePolicy("a[")
		assert.ErrorIs(t, err, ErrInvalidIgnorePattern)
	})

	t.Run("no patterns", func(t *testing.T) {
		policy, err := NewIgnorePolicy()
		require.NoError(t, err)
		assert.False(t, policy.Excluded("anything.txt"))
	})
}

func TestIgnorePolicyExcluded(t *testing.T) {
	policy, err := NewIgnorePolicy("vendor/**", "*.min.js", "build")
	require.NoError(t, err)

	t.Run("directory glob", func(t *testing.T) {
		assert.True(t, policy.Excluded("vendor/lib/dep.go"))
		assert.False(t, policy.Excluded("src/vendor.go"))
	})

	t.Run("base name glob", func(t *testing.T) {
		assert.True(t, policy.Excluded("assets/app.min.js"))
		assert.False(t, policy.Excluded("assets/app.js"))
	})

	t.Run("exact name", func(t *testing.T) {
		assert.True(t, policy.Excluded("build"))
		assert.True(t, policy.Excluded("out/build"))
	})

	t.Run("nil policy excludes nothing", func(t *testing.T) {
		var nilPolicy *IgnorePolicy
		assert.False(t, nilPolicy.Excluded("vendor/lib/dep.go"))
	})
}

func TestLoadIgnoreFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "ignore.yml")
		contents := "ignore:\n  - \"vendor/**\"\n  - \"*.log\"\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		policy, err := LoadIgnoreFile(path)
		require.NoError(t, err)
		assert.True(t, policy.Excluded("vendor/a/b.go"))
		assert.True(t, policy.Excluded("debug.log"))
		assert.False(t, policy.Excluded("main.go"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadIgnoreFile(filepath.Join(dir, "absent.yml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("ignore: [unclosed"), 0o644))

		_, err := LoadIgnoreFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid pattern in file", func(t *testing.T) {
		path := filepath.Join(dir, "badpattern.yml")
		require.NoError(t, os.WriteFile(path, []byte("ignore:\n  - \"a[\"\n"), 0o644))

		_, err := LoadIgnoreFile(path)
		assert.ErrorIs(t, err, ErrInvalidIgnorePattern)
	})
}
