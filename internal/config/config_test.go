package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 100000, cfg.Odds.Iterations)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Odds.Workers)
	assert.True(t, cfg.Color())
	assert.True(t, cfg.Unicode())
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
seed      = 42

odds {
  iterations = 5000
  workers    = 2
}

display {
  color = false
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, cfg.Level())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, 5000, cfg.Odds.Iterations)
	assert.Equal(t, 2, cfg.Odds.Workers)
	assert.False(t, cfg.Color())
	assert.True(t, cfg.Unicode(), "unset attributes keep their default")
}

func TestLoadPartialBlock(t *testing.T) {
	cfg, err := Load(writeConfig(t, "odds {\n  workers = 3\n}\n"))
	require.NoError(t, err)
	assert.Equal(t, 100000, cfg.Odds.Iterations)
	assert.Equal(t, 3, cfg.Odds.Workers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax error", "log_level = ", "failed to parse"},
		{"unknown attribute", "colour = true\n", "failed to decode"},
		{"wrong type", "seed = \"abc\"\n", "failed to decode"},
		{"bad log level", "log_level = \"loud\"\n", "invalid log_level"},
		{"negative iterations", "odds {\n  iterations = -1\n}\n", "iterations must be positive"},
		{"negative workers", "odds {\n  workers = -4\n}\n", "workers must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
