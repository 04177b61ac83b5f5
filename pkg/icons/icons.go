// Package icons provides the static kind catalog: a lookup from a logical
// kind tag (e.g. "compute", "relational-store", "queue") to a display glyph.
//
// The catalog is purely cosmetic - kinds select a Graphviz shape and color
// scheme, never layout behavior. Unrecognized kinds fall back to a generic
// default glyph rather than failing, so diagrams render regardless of tag
// hygiene.
package icons

import "slices"

// Glyph describes how a node kind is drawn.
type Glyph struct {
	Kind      string // catalog key ("" for the default glyph)
	Shape     string // Graphviz node shape
	FillColor string // background fill
	FontColor string // label text color
}

// Default is the generic glyph used for unrecognized kinds.
var Default = Glyph{Shape: "box", FillColor: "#ECECEC", FontColor: "#2D3436"}

// catalog maps kind tags to glyphs. Keep entries sorted by key.
var catalog = map[string]Glyph{
	"actor":            {Shape: "ellipse", FillColor: "#FDF6E3", FontColor: "#2D3436"},
	"browser":          {Shape: "box", FillColor: "#D6EAF8", FontColor: "#1B4F72"},
	"cache":            {Shape: "box3d", FillColor: "#FADBD8", FontColor: "#78281F"},
	"compute":          {Shape: "box", FillColor: "#FDEBD0", FontColor: "#7E5109"},
	"function":         {Shape: "component", FillColor: "#FDEBD0", FontColor: "#7E5109"},
	"gateway":          {Shape: "hexagon", FillColor: "#D5F5E3", FontColor: "#145A32"},
	"key-value-store":  {Shape: "cylinder", FillColor: "#D4E6F1", FontColor: "#1A5276"},
	"mobile":           {Shape: "box", FillColor: "#D6EAF8", FontColor: "#1B4F72"},
	"monitoring":       {Shape: "note", FillColor: "#E8DAEF", FontColor: "#4A235A"},
	"network":          {Shape: "doublecircle", FillColor: "#EAECEE", FontColor: "#2D3436"},
	"queue":            {Shape: "cds", FillColor: "#FCF3CF", FontColor: "#7D6608"},
	"relational-store": {Shape: "cylinder", FillColor: "#D4EFDF", FontColor: "#145A32"},
	"security":         {Shape: "octagon", FillColor: "#F5B7B1", FontColor: "#78281F"},
}

// Lookup returns the glyph for kind, falling back to [Default] for
// unrecognized (or empty) kinds.
func Lookup(kind string) Glyph {
	if g, ok := catalog[kind]; ok {
		g.Kind = kind
		return g
	}
	return Default
}

// Known reports whether kind has a dedicated glyph.
func Known(kind string) bool {
	_, ok := catalog[kind]
	return ok
}

// Kinds returns all catalog keys in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
