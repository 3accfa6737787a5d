// Package config loads the optional graphos configuration file.
//
// The file lives at $XDG_CONFIG_HOME/graphos/config.toml (falling back to
// ~/.config/graphos/config.toml) and overrides the built-in defaults
// field-by-field; a missing file is not an error. Example:
//
//	tick_rate_ms = 33
//	directed = false
//
//	[layout]
//	spring_length = 14.0
//	repulsion = 300.0
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/graphos-dev/graphos/pkg/layout"
)

// appName names the config directory, ~/.config/<appName>/.
const appName = "graphos"

// Config is the full configuration with defaults applied.
type Config struct {
	// TickRateMS caps the layout/render tick interval in milliseconds.
	TickRateMS int `toml:"tick_rate_ms"`
	// LogFile overrides the session log location. Empty selects the
	// default under the user state directory.
	LogFile string `toml:"log_file"`
	// Directed toggles directed-graph mode for loads and exports.
	Directed bool `toml:"directed"`

	Layout Layout `toml:"layout"`
}

// Layout mirrors [layout.Tuning] with toml tags. Zero fields fall back to
// the engine defaults, so a config file can override a single constant.
type Layout struct {
	SpringLength float64 `toml:"spring_length"`
	Spring       float64 `toml:"spring"`
	Repulsion    float64 `toml:"repulsion"`
	Damping      float64 `toml:"damping"`
	MaxStep      float64 `toml:"max_step"`
	Threshold    float64 `toml:"threshold"`
	Budget       int     `toml:"budget"`
	Seed         int64   `toml:"seed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRateMS: 50,
	}
}

// TickRate returns the tick interval as a duration, never below 10ms so a
// misconfigured file cannot flood the terminal.
func (c Config) TickRate() time.Duration {
	ms := c.TickRateMS
	if ms < 10 {
		ms = 10
	}
	return time.Duration(ms) * time.Millisecond
}

// Tuning merges the layout overrides onto the engine defaults.
func (c Config) Tuning() layout.Tuning {
	t := layout.DefaultTuning()
	if c.Layout.SpringLength > 0 {
		t.SpringLength = c.Layout.SpringLength
	}
	if c.Layout.Spring > 0 {
		t.Spring = c.Layout.Spring
	}
	if c.Layout.Repulsion > 0 {
		t.Repulsion = c.Layout.Repulsion
	}
	if c.Layout.Damping > 0 {
		t.Damping = c.Layout.Damping
	}
	if c.Layout.MaxStep > 0 {
		t.MaxStep = c.Layout.MaxStep
	}
	if c.Layout.Threshold > 0 {
		t.Threshold = c.Layout.Threshold
	}
	if c.Layout.Budget > 0 {
		t.Budget = c.Layout.Budget
	}
	if c.Layout.Seed != 0 {
		t.Seed = c.Layout.Seed
	}
	return t
}

// Load decodes the file at path over the defaults. A malformed file is an
// error; the caller decides whether to abort or fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve finds and loads the user configuration. When no file exists the
// defaults are returned with an empty path and no error.
func Resolve() (Config, string, error) {
	path, err := Path()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return Default(), path, err
	}
	return cfg, path, nil
}

// Path returns the config file location using the XDG convention
// ($XDG_CONFIG_HOME/graphos/config.toml, else ~/.config/graphos/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
