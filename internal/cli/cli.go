// Package cli implements the graphos command-line interface.
//
// The root command opens an interactive terminal session on an edge-list
// file (or an empty graph). Subcommands handle non-interactive work:
//   - render: produce an SVG or DOT file from an edge list without
//     opening the editor
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; the interactive session additionally
// writes a per-session file log so the terminal stays clean.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphos-dev/graphos/pkg/buildinfo"
	"github.com/graphos-dev/graphos/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphos"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	ConfigPath string // --config override, empty for the XDG default
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root itself opens the interactive editor.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphos [file]",
		Short:        "Graphos is an interactive terminal graph editor",
		Long:         `Graphos renders node-link graphs as text in the terminal and lets you edit them live: add and connect nodes with the mouse, pan and zoom the canvas, and save the result back to a plain edge-list file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSession(cmd.Context(), path)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/graphos/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves the effective configuration: the --config file when
// given, otherwise the XDG default (missing file means built-in defaults).
func (c *CLI) loadConfig() (config.Config, error) {
	if c.ConfigPath != "" {
		return config.Load(c.ConfigPath)
	}
	cfg, path, err := config.Resolve()
	if err != nil {
		return cfg, err
	}
	if path != "" {
		c.Logger.Debugf("Loaded config from %s", path)
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// stateDir returns the state directory using XDG standard
// (~/.local/state/graphos/). Session logs live here.
func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}
