// Package pipeline provides the manifest → diagram → render pipeline.
//
// This package implements the complete build → layout → write flow used by
// the CLI and the preview server. Centralizing it keeps behavior consistent
// across entry points: the same caching, the same atomic output discipline,
// the same observability events.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: load the topology manifest and assemble the diagram model
//  2. Render: serialize to DOT and invoke the layout backend
//  3. Write: move the finished artifact into place atomically
//
// Construction errors abort before any render is attempted; backend errors
// are surfaced verbatim and never retried (render inputs are deterministic,
// so a blind retry would reproduce the same failure).
//
// # Usage
//
//	runner := pipeline.NewRunner(fileCache, logger)
//	result, err := runner.Run(ctx, "topology.yaml", pipeline.Options{
//	    Format: "svg",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/diagraph/diagraph/pkg/render"
)

// Defaults shared by CLI and preview server.
const (
	// DefaultFormat is the output format when none is requested.
	DefaultFormat = render.FormatSVG

	// DefaultScale is the PNG rasterization scale.
	DefaultScale = render.DefaultPNGScale

	// DefaultCacheTTL bounds how long cached artifacts are reused. Artifacts
	// are content-addressed, so the TTL only limits cache growth.
	DefaultCacheTTL = 30 * 24 * time.Hour
)

// Options configures a pipeline run.
type Options struct {
	// Format is the output format: svg, png, pdf, or dot. Empty means
	// DefaultFormat.
	Format string

	// Output is the artifact path. Empty falls back to the manifest's
	// output field, then to the manifest path with the format extension.
	Output string

	// Direction overrides the manifest's layout direction when non-empty.
	Direction string

	// Scale is the PNG rasterization scale. Zero means DefaultScale.
	Scale float64
}

// Result reports what a pipeline run produced.
type Result struct {
	OutputPath string // where the artifact was written
	NodeCount  int    // nodes in the assembled diagram
	EdgeCount  int    // edge records in the assembled diagram
	Cached     bool   // artifact came from the render cache
}

// normalize fills in defaults.
func (o Options) normalize() Options {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return o
}

// outputPath derives the artifact path from the options, the manifest's
// declared output, and the manifest path, in that priority order.
func outputPath(opts Options, manifestOutput, manifestPath string) string {
	if opts.Output != "" {
		return opts.Output
	}
	if manifestOutput != "" {
		// The manifest's extension wins only when it matches the format;
		// otherwise swap it so "output: arch.svg" + --format png works.
		ext := strings.TrimPrefix(filepath.Ext(manifestOutput), ".")
		if ext == opts.Format {
			return manifestOutput
		}
		return strings.TrimSuffix(manifestOutput, filepath.Ext(manifestOutput)) + "." + opts.Format
	}
	return strings.TrimSuffix(manifestPath, filepath.Ext(manifestPath)) + "." + opts.Format
}
