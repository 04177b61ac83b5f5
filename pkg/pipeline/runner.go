package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diagraph/diagraph/pkg/cache"
	"github.com/diagraph/diagraph/pkg/diagram"
	"github.com/diagraph/diagraph/pkg/errors"
	"github.com/diagraph/diagraph/pkg/manifest"
	"github.com/diagraph/diagraph/pkg/observability"
	"github.com/diagraph/diagraph/pkg/render"
	"github.com/diagraph/diagraph/pkg/render/dot"
)

// Runner executes the pipeline with a shared artifact cache and logger.
// A nil cache disables caching; a nil logger discards output.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Run loads the manifest at manifestPath, builds the diagram, renders it, and
// writes the artifact atomically. No output file is touched on any failure.
func (r *Runner) Run(ctx context.Context, manifestPath string, opts Options) (Result, error) {
	opts = opts.normalize()

	d, m, err := r.build(ctx, manifestPath, opts)
	if err != nil {
		return Result{}, err
	}

	out := outputPath(opts, m.Output, manifestPath)
	res := Result{OutputPath: out, NodeCount: d.NodeCount(), EdgeCount: d.EdgeCount()}

	data, cached, err := r.renderCached(ctx, d, opts)
	if err != nil {
		return Result{}, err
	}
	res.Cached = cached

	if err := render.WriteFile(out, data); err != nil {
		return Result{}, err
	}
	r.logger.Infof("Generated %s", out)
	return res, nil
}

// RunDiagram renders an already-built diagram to opts.Output (which must be
// set). Library callers use this to skip the manifest stage.
func (r *Runner) RunDiagram(ctx context.Context, d *diagram.Diagram, opts Options) (Result, error) {
	opts = opts.normalize()

	data, cached, err := r.renderCached(ctx, d, opts)
	if err != nil {
		return Result{}, err
	}
	if err := render.WriteFile(opts.Output, data); err != nil {
		return Result{}, err
	}
	return Result{
		OutputPath: opts.Output,
		NodeCount:  d.NodeCount(),
		EdgeCount:  d.EdgeCount(),
		Cached:     cached,
	}, nil
}

// build loads and assembles the diagram, emitting build events.
func (r *Runner) build(ctx context.Context, manifestPath string, opts Options) (*diagram.Diagram, *manifest.Manifest, error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, manifestPath)
	start := time.Now()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		hooks.OnBuildComplete(ctx, manifestPath, 0, 0, time.Since(start), err)
		return nil, nil, err
	}
	if opts.Direction != "" {
		m.Direction = opts.Direction
	}

	d, err := m.Build()
	if err != nil {
		hooks.OnBuildComplete(ctx, manifestPath, 0, 0, time.Since(start), err)
		return nil, nil, err
	}

	hooks.OnBuildComplete(ctx, manifestPath, d.NodeCount(), d.EdgeCount(), time.Since(start), nil)
	r.logger.Infof("Built diagram %q: %d nodes, %d clusters, %d edges",
		d.Title(), d.NodeCount(), d.ClusterCount(), d.EdgeCount())
	return d, m, nil
}

// renderCached produces artifact bytes, consulting the cache first.
func (r *Runner) renderCached(ctx context.Context, d *diagram.Diagram, opts Options) ([]byte, bool, error) {
	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()

	if !d.Closed() {
		return nil, false, errors.New(errors.ErrCodeScope,
			"diagram %q is still open; partial graphs are never rendered", d.Title())
	}

	dotSrc := dot.Marshal(d)
	key := cache.ArtifactKey(dotSrc, opts.Format, opts.Scale)

	if data, hit, err := r.cache.Get(ctx, key); err != nil {
		cacheHooks.OnCacheError(ctx, key, err)
		r.logger.Debugf("Cache get failed: %v", err)
	} else if hit {
		cacheHooks.OnCacheHit(ctx, key)
		r.logger.Debug("Using cached artifact")
		return data, true, nil
	} else {
		cacheHooks.OnCacheMiss(ctx, key)
	}

	hooks.OnRenderStart(ctx, opts.Format)
	start := time.Now()
	data, err := render.Render(ctx, d, opts.Format, opts.Scale)
	hooks.OnRenderComplete(ctx, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	r.logger.Debugf("Rendered %s: %d bytes (%s)", opts.Format, len(data), time.Since(start).Round(time.Millisecond))

	if err := r.cache.Set(ctx, key, data, DefaultCacheTTL); err != nil {
		cacheHooks.OnCacheError(ctx, key, err)
		r.logger.Debugf("Cache set failed: %v", err)
	}
	return data, false, nil
}
