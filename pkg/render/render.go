package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/diagraph/diagraph/pkg/diagram"
	"github.com/diagraph/diagraph/pkg/errors"
	"github.com/diagraph/diagraph/pkg/render/dot"
)

// Output formats supported by [Render] and [File].
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatDOT = "dot" // raw layout-engine input, useful for debugging
)

// DefaultPNGScale is the rasterization scale for PNG output (2x for
// high-DPI displays).
const DefaultPNGScale = 2.0

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{FormatSVG: true, FormatPNG: true, FormatPDF: true, FormatDOT: true}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'svg', 'png', 'pdf', or 'dot')", format)
	}
	return nil
}

// SVG lays out a DOT graph and renders it to SVG using Graphviz.
// An empty graph renders to a valid (empty) SVG document, not an error.
func SVG(ctx context.Context, dotSrc string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "graphviz layout")
	}
	return buf.Bytes(), nil
}

// Render serializes the diagram to DOT and produces artifact bytes in the
// requested format. scale applies to PNG rasterization only; zero means
// [DefaultPNGScale]. The diagram must be sealed with Close first; rendering
// an open diagram would expose a partial model, so it is rejected.
func Render(ctx context.Context, d *diagram.Diagram, format string, scale float64) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if !d.Closed() {
		return nil, errors.New(errors.ErrCodeScope,
			"diagram %q is still open; partial graphs are never rendered", d.Title())
	}

	dotSrc := dot.Marshal(d)
	if format == FormatDOT {
		return []byte(dotSrc), nil
	}

	svg, err := SVG(ctx, dotSrc)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return ToPNG(svg, scale)
	case FormatPDF:
		return ToPDF(svg)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
}

// File renders the diagram and writes the artifact to path atomically.
// On any failure no file is created or left partially written at path.
// It returns the output path for convenience.
func File(ctx context.Context, d *diagram.Diagram, path, format string, scale float64) (string, error) {
	data, err := Render(ctx, d, format, scale)
	if err != nil {
		return "", err
	}
	if err := WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}
