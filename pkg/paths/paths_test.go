package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigFile(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		dir := t.TempDir()
		override := filepath.Join(dir, "custom.toml")
		t.Setenv(EnvConfigFile, override)

		got, err := DefaultConfigFile()
		require.NoError(t, err)
		assert.Equal(t, override, got)
	})

	t.Run("relative env override becomes absolute", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "relative.toml")

		got, err := DefaultConfigFile()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "path should be absolute, got %q", got)
	})

	t.Run("derived path names the invoking program", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "")

		got, err := DefaultConfigFile()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.True(t, strings.HasSuffix(got, filepath.Join(ProgramName(), DefaultFileName)),
			"path %q should end with program dir and %s", got, DefaultFileName)
	})
}

func TestProgramName(t *testing.T) {
	name := ProgramName()
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, string(filepath.Separator))
}

func TestNormalize(t *testing.T) {
	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := Normalize("")
		assert.Error(t, err)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := Normalize("some/file")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("absolute path is unchanged", func(t *testing.T) {
		got, err := Normalize("/tmp/settings.toml")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/settings.toml", got)
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := Normalize("~/prefs.toml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "prefs.toml"), got)
	})
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "settings.toml")

	require.NoError(t, EnsureParentDir(target))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))

	// idempotent
	require.NoError(t, EnsureParentDir(target))
}
