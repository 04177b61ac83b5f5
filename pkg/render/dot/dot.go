// Package dot translates a diagram model into the Graphviz DOT language.
//
// The translation preserves the model exactly: every cluster becomes a
// labeled subgraph, every edge becomes one connection statement, in creation
// order. No simplification is performed - no edge deduplication and no
// cluster flattening.
package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/diagraph/diagraph/pkg/diagram"
	"github.com/diagraph/diagraph/pkg/icons"
)

// Marshal converts a diagram to Graphviz DOT format. The output is
// deterministic for identical diagrams.
//
// Clusters are emitted as "subgraph cluster_*" blocks so Graphviz draws a
// boundary, with compound=true and an invisible anchor point per cluster so
// edges can terminate at the cluster boundary (via lhead/ltail) - including
// edges to empty clusters.
func Marshal(d *diagram.Diagram) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", d.Title())
	fmt.Fprintf(&buf, "  rankdir=%s;\n", d.Direction().Rankdir())
	fmt.Fprintf(&buf, "  label=%q;\n", d.Title())
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontsize=20;\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=\"rounded,filled\", fontsize=13, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, entry := range d.Roots() {
		writeEntry(&buf, entry, 1)
	}

	if edges := d.Edges(); len(edges) > 0 {
		buf.WriteString("\n")
		for _, e := range edges {
			writeEdge(&buf, e)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeEntry(buf *bytes.Buffer, entry diagram.Endpoint, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := entry.(type) {
	case *diagram.Node:
		g := icons.Lookup(v.Kind())
		fmt.Fprintf(buf, "%s%q [label=%q, shape=%s, fillcolor=%q, fontcolor=%q];\n",
			pad, v.ID(), v.Label(), g.Shape, g.FillColor, g.FontColor)
	case *diagram.Cluster:
		fmt.Fprintf(buf, "%ssubgraph %q {\n", pad, subgraphName(v))
		fmt.Fprintf(buf, "%s  label=%q;\n", pad, v.Title())
		fmt.Fprintf(buf, "%s  style=rounded;\n", pad)
		fmt.Fprintf(buf, "%s  color=%q;\n", pad, "#AEB6BF")
		fmt.Fprintf(buf, "%s  fontcolor=%q;\n", pad, "#2D3436")
		// Invisible anchor so the cluster is addressable as an edge endpoint
		// even when empty.
		fmt.Fprintf(buf, "%s  %q [shape=point, style=invis, width=0.01, height=0.01];\n", pad, v.ID())
		for _, child := range v.Children() {
			writeEntry(buf, child, depth+1)
		}
		fmt.Fprintf(buf, "%s}\n", pad)
	}
}

func writeEdge(buf *bytes.Buffer, e *diagram.Edge) {
	var attrs []string
	if e.Label() != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label()))
	}
	if e.Bidirectional() {
		attrs = append(attrs, "dir=both")
	}

	from := e.From().ID()
	to := e.To().ID()
	if c, ok := e.From().(*diagram.Cluster); ok {
		attrs = append(attrs, fmt.Sprintf("ltail=%q", subgraphName(c)))
	}
	if c, ok := e.To().(*diagram.Cluster); ok {
		attrs = append(attrs, fmt.Sprintf("lhead=%q", subgraphName(c)))
	}

	if len(attrs) == 0 {
		fmt.Fprintf(buf, "  %q -> %q;\n", from, to)
		return
	}
	fmt.Fprintf(buf, "  %q -> %q [%s];\n", from, to, strings.Join(attrs, ", "))
}

// subgraphName returns the DOT subgraph name for a cluster. The "cluster"
// prefix is what makes Graphviz draw a boundary around the subgraph.
func subgraphName(c *diagram.Cluster) string {
	return "cluster_" + c.ID()
}
