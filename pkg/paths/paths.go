// Package paths derives filesystem locations for nostalgic settings files.
// It follows the XDG Base Directory specification so repeated runs of the
// same program find the same file without any configuration.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/excalamus/nostalgic/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile overrides the derived settings file path
	EnvConfigFile = "NOSTALGIC_CONFIG_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// DefaultFileName is the file name used when deriving a settings path
const DefaultFileName = "settings.toml"

// DefaultConfigFile returns the settings file path for the invoking program:
// NOSTALGIC_CONFIG_FILE if set, otherwise
// $XDG_CONFIG_HOME/<program>/settings.toml. The result is always absolute.
func DefaultConfigFile() (string, error) {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return Normalize(override)
	}
	return ConfigFileFor(ProgramName())
}

// ConfigFileFor returns the settings file path a given program derives when
// no explicit path is supplied
func ConfigFileFor(program string) (string, error) {
	if program == "" {
		return "", errors.New(errors.ErrInvalidInput, "program name cannot be empty")
	}
	return Normalize(filepath.Join(xdg.ConfigHome, program, DefaultFileName))
}

// ProgramName returns the name of the invoking program, stripped of a
// trailing extension so Windows binaries and `go test` binaries derive the
// same location as their plain counterparts.
func ProgramName() string {
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "nostalgic"
	}
	return name
}

// Normalize expands a leading ~ and makes the path absolute
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	path = expandHome(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve absolute path for %q", path)
	}
	return abs, nil
}

// EnsureParentDir creates the parent directory of path if it is missing
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %q", dir)
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
