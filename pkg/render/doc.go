// Package render invokes the Graphviz layout backend and writes image
// artifacts to disk.
//
// # Overview
//
// The render pipeline is: diagram model → DOT text ([dot.Marshal]) → layout
// via Graphviz ([SVG]) → optional format conversion ([ToPNG], [ToPDF]) →
// atomic file write ([WriteFile]).
//
//	d, _ := diagram.Build("Checkout", buildFn)
//	out, err := render.File(ctx, d, "checkout.svg", render.FormatSVG, 0)
//
// # Backends
//
// SVG layout runs through goccy/go-graphviz. PNG and PDF conversion shell
// out to rsvg-convert (from librsvg) as an out-of-process step. Backend
// failures - missing binary, non-zero exit, malformed output - surface as
// RENDER_BACKEND errors with the backend's diagnostic text attached. Render
// inputs are deterministic, so failures are never retried.
//
// # Atomicity
//
// All file output is atomic: artifacts are rendered fully in memory, written
// to a temporary file next to the target, and renamed into place only on
// success. A failed or cancelled render never leaves a partial output file.
//
// [dot.Marshal]: github.com/diagraph/diagraph/pkg/render/dot
package render
