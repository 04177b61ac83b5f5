package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diagraph/diagraph/pkg/cache"
	"github.com/diagraph/diagraph/pkg/config"
	"github.com/diagraph/diagraph/pkg/pipeline"
	"github.com/diagraph/diagraph/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path (empty derives from the manifest)
	format    string  // output format: svg, png, pdf, dot
	direction string  // layout direction override
	scale     float64 // PNG rasterization scale
	noCache   bool    // disable the render cache
	cacheDir  string  // render cache location
}

// newRenderCmd creates the render command for generating diagram artifacts.
//
// Default settings come from the config file, falling back to:
//   - format: svg
//   - scale: 2.0 (PNG only)
//   - caching: enabled, in the platform cache dir
func newRenderCmd(cfg config.Config) *cobra.Command {
	opts := renderOpts{
		format:    cfg.Format,
		direction: cfg.Direction,
		scale:     pipeline.DefaultScale,
		noCache:   cfg.NoCache,
		cacheDir:  cfg.CacheDir,
	}

	cmd := &cobra.Command{
		Use:   "render [manifest.yaml]",
		Short: "Render a topology manifest to a diagram image",
		Long: `Render a topology manifest to a diagram image.

The manifest declares the diagram's nodes, nested clusters, and edges; the
layout itself is delegated to Graphviz. Output format is inferred from
--format (svg, png, pdf, or dot for the raw layout-engine input).

Rendered artifacts are cached locally by content, so re-rendering an
unchanged manifest is instant. Use --no-cache to force a fresh render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the manifest's output field)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, pdf, dot")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", opts.direction, "layout direction override (TB, LR, BT, RL)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG rasterization scale")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "disable the render cache")

	return cmd
}

// runRender builds the manifest and writes the artifact, with a spinner over
// the blocking layout step.
func runRender(ctx context.Context, manifestPath string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", manifestPath)
	prog := newProgress(logger)

	c, err := openCache(opts.noCache, opts.cacheDir)
	if err != nil {
		logger.Warnf("Cache unavailable, rendering without it: %v", err)
		c = cache.NewNullCache()
	}
	defer c.Close()

	sp := newSpinner(ctx, "Laying out diagram...")
	sp.Start()
	result, err := pipeline.NewRunner(c, logger).Run(ctx, manifestPath, pipeline.Options{
		Format:    opts.format,
		Output:    opts.output,
		Direction: opts.direction,
		Scale:     opts.scale,
	})
	sp.Stop()
	if err != nil {
		return err
	}

	if result.Cached {
		logger.Debug("Artifact served from cache")
	}
	prog.done(fmt.Sprintf("Rendered %d nodes, %d edges to %s",
		result.NodeCount, result.EdgeCount, result.OutputPath))
	return nil
}

// openCache returns the configured artifact cache.
func openCache(noCache bool, dir string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
