package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphos-dev/graphos/pkg/edgelist"
	"github.com/graphos-dev/graphos/pkg/export"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the input when empty
	format   string // "svg" or "dot"
	weights  bool   // label edges with their weight
	directed bool   // treat edges as directed; defaults from config
}

// renderCommand creates the render command: a one-shot export of an
// edge-list file to an SVG or DOT graph, no editor involved.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an edge-list file to SVG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", opts.format)
			}
			if !cmd.Flags().Changed("directed") {
				cfg, err := c.loadConfig()
				if err != nil {
					return fmt.Errorf("config: %w", err)
				}
				opts.directed = cfg.Directed
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges with their weight")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "treat edges as directed (default: the config's directed setting)")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	store, warnings, err := edgelist.ImportFile(input, opts.directed)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warnf("Skipped malformed line: %s", w)
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", store.NodeCount(), store.EdgeCount())

	dot := export.ToDOT(store, export.Options{Weights: opts.weights})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		data, err = export.RenderSVG(ctx, dot)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}

	logger.Infof("Generated %s", outputPath)
	return nil
}
