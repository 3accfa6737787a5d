package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/graphos-dev/graphos/internal/tui"
	"github.com/graphos-dev/graphos/pkg/edgelist"
	"github.com/graphos-dev/graphos/pkg/graph"
)

// runSession opens the interactive editor on path, or on an empty graph when
// path is empty or names a file that does not exist yet (it becomes the save
// target either way).
func (c *CLI) runSession(ctx context.Context, path string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := openSessionLog(cfg.LogFile, c.Logger.GetLevel())
	if err != nil {
		return fmt.Errorf("session log: %w", err)
	}
	defer closer.Close()

	store, err := loadStore(logger, cfg.Directed, path)
	if err != nil {
		return err
	}
	logger.Info("session starting", "file", path, "nodes", store.NodeCount(), "edges", store.EdgeCount())

	p := tea.NewProgram(
		tui.New(store, cfg, logger, path),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

func loadStore(logger *log.Logger, directed bool, path string) (*graph.Store, error) {
	if path == "" {
		return graph.New(directed), nil
	}
	store, warnings, err := edgelist.ImportFile(path, directed)
	if errors.Is(err, fs.ErrNotExist) {
		return graph.New(directed), nil
	}
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		logger.Warn("skipped malformed line", "detail", w.String())
	}
	return store, nil
}
