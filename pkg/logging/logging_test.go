package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{name: "default is warn", verbosity: 0, wantLevel: zerolog.WarnLevel},
		{name: "-v is info", verbosity: 1, wantLevel: zerolog.InfoLevel},
		{name: "-vv is debug", verbosity: 2, wantLevel: zerolog.DebugLevel},
		{name: "-vvv is trace", verbosity: 3, wantLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("settings")
	// the component logger must be usable without further setup
	logger.Debug().Msg("component logger works")
}

func TestSetupLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "state", LogFileName)

	f, err := setupLogFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.FileExists(t, path)
}
