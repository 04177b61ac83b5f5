package diagram

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/diagraph/diagraph/pkg/errors"
)

// Endpoint is anything addressable as an edge endpoint: a *Node or a
// *Cluster. Endpoints are also the child entries of a scope.
type Endpoint interface {
	// ID returns the unique handle within the owning diagram.
	ID() string
	// Label returns the display text.
	Label() string

	diagram() *Diagram
}

// Diagram is the root construction scope. It owns the full containment tree
// of clusters and nodes plus a flat list of edges overlaid on that tree.
//
// The zero value is not usable - use [New]. A Diagram is not safe for
// concurrent construction; separate Diagram values are fully independent.
type Diagram struct {
	id        string
	title     string
	direction Direction

	roots     []Endpoint
	stack     []*Cluster // open cluster scopes, innermost last
	endpoints map[string]Endpoint
	edges     []*Edge

	seq    int
	closed bool
}

// Option configures a Diagram at creation time.
type Option func(*Diagram)

// WithDirection sets the layout flow hint. Default is [DefaultDirection].
func WithDirection(dir Direction) Option {
	return func(d *Diagram) { d.direction = dir }
}

// New creates an empty open diagram with the given title.
func New(title string, opts ...Option) *Diagram {
	d := &Diagram{
		id:        uuid.NewString(),
		title:     title,
		direction: DefaultDirection,
		endpoints: make(map[string]Endpoint),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Build runs fn against a fresh diagram and seals it on every exit path,
// including panics. If fn returns an error, the partially built diagram is
// discarded and the error is returned - callers never see a partial model.
func Build(title string, fn func(*Diagram) error, opts ...Option) (*Diagram, error) {
	d := New(title, opts...)
	defer d.Close()
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return d, nil
}

// ID returns the diagram's unique instance identifier. Titles may repeat
// across diagrams; the instance id never does.
func (d *Diagram) ID() string { return d.id }

// Title returns the diagram title.
func (d *Diagram) Title() string { return d.title }

// Direction returns the layout flow hint.
func (d *Diagram) Direction() Direction { return d.direction }

// Closed reports whether the diagram has been sealed.
func (d *Diagram) Closed() bool { return d.closed }

// Roots returns the ordered top-level entries of the containment tree.
// The returned slice is a copy.
func (d *Diagram) Roots() []Endpoint {
	out := make([]Endpoint, len(d.roots))
	copy(out, d.roots)
	return out
}

// Edges returns the diagram's edges in creation order.
// The returned slice is a copy.
func (d *Diagram) Edges() []*Edge {
	out := make([]*Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// EdgeCount returns the number of edge records.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// NodeCount returns the number of nodes across all scopes.
func (d *Diagram) NodeCount() int {
	n := 0
	for _, ep := range d.endpoints {
		if _, ok := ep.(*Node); ok {
			n++
		}
	}
	return n
}

// ClusterCount returns the number of clusters across all scopes.
func (d *Diagram) ClusterCount() int {
	return len(d.endpoints) - d.NodeCount()
}

// Node creates a node in the currently active scope: the innermost open
// cluster, or the diagram root if no cluster is open. Fails with a
// SCOPE_VIOLATION error once the diagram is closed.
func (d *Diagram) Node(label, kind string) (*Node, error) {
	return d.nodeIn(d.top(), label, kind)
}

// OpenCluster opens a cluster in the currently active scope and makes it the
// new active scope. It must be paired with [Diagram.CloseCluster]; prefer the
// closure form [Diagram.Cluster], which guarantees the pairing.
func (d *Diagram) OpenCluster(title string) (*Cluster, error) {
	return d.openClusterIn(d.top(), title)
}

// CloseCluster closes c and reverts the active scope to its parent. Scopes
// close in strict LIFO order: closing a cluster while a scope opened after it
// is still open fails with a SCOPE_VIOLATION error.
func (d *Diagram) CloseCluster(c *Cluster) error {
	if d.closed {
		return errors.New(errors.ErrCodeScope, "diagram %q is closed", d.title)
	}
	if c == nil || !c.open {
		return errors.New(errors.ErrCodeScope, "cluster is not open")
	}
	top := d.top()
	if top != c {
		return errors.New(errors.ErrCodeScope,
			"cannot close cluster %q while %q is still open (scopes close in LIFO order)", c.title, top.title)
	}
	d.stack = d.stack[:len(d.stack)-1]
	c.open = false
	return nil
}

// Cluster opens a cluster in the currently active scope, runs build inside
// it, and closes it on every exit path, including panics. If build leaves
// nested scopes open, they are force-closed as part of unwinding and the
// violation is reported.
func (d *Diagram) Cluster(title string, build func(*Cluster) error) (*Cluster, error) {
	c, err := d.OpenCluster(title)
	if err != nil {
		return nil, err
	}
	// c is a local, never a named return: the cleanup must still see the
	// cluster when an error path returns nil.
	defer func() {
		if c.open {
			d.unwindTo(c)
		}
	}()
	if err := build(c); err != nil {
		return nil, err
	}
	if err := d.CloseCluster(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Connect records a directed edge from src to dst and returns a [Path] ending
// at dst for chaining. Both endpoints must have been created by this diagram;
// foreign or nil handles fail with an UNKNOWN_ENDPOINT error. Self-loops and
// repeated edges between the same pair are allowed.
func (d *Diagram) Connect(src, dst Endpoint, opts ...EdgeOption) (*Path, error) {
	if d.closed {
		return nil, errors.New(errors.ErrCodeScope, "diagram %q is closed", d.title)
	}
	if err := d.checkEndpoint(src, "source"); err != nil {
		return nil, err
	}
	if err := d.checkEndpoint(dst, "destination"); err != nil {
		return nil, err
	}
	e := &Edge{from: src, to: dst}
	for _, opt := range opts {
		opt(e)
	}
	d.edges = append(d.edges, e)
	return &Path{d: d, tail: dst}, nil
}

// Close seals the diagram. Any cluster scopes still open are force-closed in
// LIFO order, mirroring stack unwinding after a construction failure.
// Close is idempotent; construction calls after Close fail with a
// SCOPE_VIOLATION error.
func (d *Diagram) Close() error {
	if d.closed {
		return nil
	}
	for i := len(d.stack) - 1; i >= 0; i-- {
		d.stack[i].open = false
	}
	d.stack = nil
	d.closed = true
	return nil
}

// top returns the innermost open cluster, or nil for the root scope.
func (d *Diagram) top() *Cluster {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

// unwindTo force-closes open scopes from the innermost down to and including c.
func (d *Diagram) unwindTo(c *Cluster) {
	for len(d.stack) > 0 {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		top.open = false
		if top == c {
			return
		}
	}
}

// nodeIn creates a node in scope parent (nil for the root scope).
func (d *Diagram) nodeIn(parent *Cluster, label, kind string) (*Node, error) {
	if d.closed {
		return nil, errors.New(errors.ErrCodeScope, "diagram %q is closed", d.title)
	}
	if parent != nil && !parent.open {
		return nil, errors.New(errors.ErrCodeScope, "cluster %q is closed", parent.title)
	}
	n := &Node{id: d.newID("n"), label: label, kind: kind, d: d}
	d.endpoints[n.id] = n
	d.appendChild(parent, n)
	return n, nil
}

// openClusterIn opens a cluster under parent (nil for the root scope).
func (d *Diagram) openClusterIn(parent *Cluster, title string) (*Cluster, error) {
	if d.closed {
		return nil, errors.New(errors.ErrCodeScope, "diagram %q is closed", d.title)
	}
	if parent != nil && !parent.open {
		return nil, errors.New(errors.ErrCodeScope, "cluster %q is closed", parent.title)
	}
	c := &Cluster{id: d.newID("c"), title: title, d: d, open: true}
	d.endpoints[c.id] = c
	d.appendChild(parent, c)
	d.stack = append(d.stack, c)
	return c, nil
}

func (d *Diagram) appendChild(parent *Cluster, child Endpoint) {
	if parent == nil {
		d.roots = append(d.roots, child)
		return
	}
	parent.children = append(parent.children, child)
}

func (d *Diagram) checkEndpoint(ep Endpoint, role string) error {
	// A nil *Node or *Cluster stored in the interface is not == nil, so the
	// concrete types are checked too.
	switch v := ep.(type) {
	case nil:
		return errors.New(errors.ErrCodeUnknownEndpoint, "%s endpoint is nil", role)
	case *Node:
		if v == nil {
			return errors.New(errors.ErrCodeUnknownEndpoint, "%s endpoint is nil", role)
		}
	case *Cluster:
		if v == nil {
			return errors.New(errors.ErrCodeUnknownEndpoint, "%s endpoint is nil", role)
		}
	}
	owner := ep.diagram()
	if owner == nil {
		return errors.New(errors.ErrCodeUnknownEndpoint,
			"%s endpoint %q was never registered", role, ep.Label())
	}
	if owner != d {
		return errors.New(errors.ErrCodeUnknownEndpoint,
			"%s endpoint %q belongs to diagram %s, not %s", role, ep.Label(), owner.ID(), d.ID())
	}
	if _, ok := d.endpoints[ep.ID()]; !ok {
		return errors.New(errors.ErrCodeUnknownEndpoint,
			"%s endpoint %q was never registered", role, ep.Label())
	}
	return nil
}

// newID mints a fresh handle. Handles are deterministic - the same
// construction sequence always yields the same handles, so the DOT text of
// two identical builds is byte-identical and the render cache can hit.
// Cross-diagram confusion is caught by checkEndpoint via the owning diagram,
// not by the handle itself.
func (d *Diagram) newID(prefix string) string {
	d.seq++
	return fmt.Sprintf("%s%d", prefix, d.seq)
}
