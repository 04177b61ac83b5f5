package diagram

// Edge is a directed (optionally bidirectional) labeled relationship between
// two endpoints. Edges hold non-owning references to their endpoints and are
// immutable once created.
type Edge struct {
	from          Endpoint
	to            Endpoint
	label         string
	bidirectional bool
}

// From returns the source endpoint.
func (e *Edge) From() Endpoint { return e.from }

// To returns the destination endpoint.
func (e *Edge) To() Endpoint { return e.to }

// Label returns the optional edge label ("" if unset).
func (e *Edge) Label() string { return e.label }

// Bidirectional reports whether the edge renders with arrowheads on both ends.
func (e *Edge) Bidirectional() bool { return e.bidirectional }

// EdgeOption configures an edge at creation time.
type EdgeOption func(*Edge)

// WithLabel attaches a display label to the edge.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.label = label }
}

// Bidirectional marks the edge as bidirectional. The model still records a
// single edge; the renderer draws arrowheads on both ends.
func Bidirectional() EdgeOption {
	return func(e *Edge) { e.bidirectional = true }
}

// Path is the chaining handle returned by [Diagram.Connect]. It expresses
// straight-line paths (A -> B -> C) as a chain of Connect calls; each hop
// issues exactly one edge record.
type Path struct {
	d    *Diagram
	tail Endpoint
}

// Then connects the path's current tail to next and returns a path ending at
// next. It is pure sugar for d.Connect(tail, next, opts...).
func (p *Path) Then(next Endpoint, opts ...EdgeOption) (*Path, error) {
	return p.d.Connect(p.tail, next, opts...)
}

// Tail returns the endpoint the path currently ends at.
func (p *Path) Tail() Endpoint { return p.tail }
