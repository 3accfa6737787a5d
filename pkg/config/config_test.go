package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphos-dev/graphos/pkg/layout"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tick_rate_ms = 100
directed = true

[layout]
spring_length = 20.0
budget = 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.TickRateMS)
	assert.True(t, cfg.Directed)

	tuning := cfg.Tuning()
	assert.Equal(t, 20.0, tuning.SpringLength)
	assert.Equal(t, 7, tuning.Budget)
	// Untouched fields keep engine defaults.
	assert.Equal(t, layout.DefaultTuning().Damping, tuning.Damping)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "tick_rate_ms = [not an int]")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveMissingFileIsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, path, err := Resolve()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestResolveReadsXDGPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "graphos"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "graphos", "config.toml"),
		[]byte("tick_rate_ms = 80\n"), 0o644))

	cfg, path, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "graphos", "config.toml"), path)
	assert.Equal(t, 80, cfg.TickRateMS)
}

func TestTickRateFloor(t *testing.T) {
	cfg := Config{TickRateMS: 1}
	assert.Equal(t, 10*time.Millisecond, cfg.TickRate())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
