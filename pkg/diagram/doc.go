// Package diagram provides the in-memory model and construction API for
// architecture diagrams.
//
// A [Diagram] is built declaratively: the caller creates labeled nodes,
// groups them into nested clusters, and wires directed edges between any
// previously created endpoints. On [Diagram.Close] the model is sealed and
// can be handed to a renderer (see pkg/render).
//
// # Scoping
//
// Construction is scoped. The diagram itself is the root scope; clusters open
// nested scopes. The current scope is tracked by an explicit stack held by
// the Diagram, so independent Diagram values never share state. Scopes close
// in strict LIFO order - closing a cluster while an inner cluster is still
// open fails with a SCOPE_VIOLATION error.
//
// The closure form guarantees well-formed nesting on every exit path,
// including panics:
//
//	d := diagram.New("Online Marketplace", diagram.WithDirection(diagram.TopToBottom))
//
//	var api *diagram.Node
//	_, err := d.Cluster("Gateway", func(c *diagram.Cluster) error {
//	    var err error
//	    api, err = c.Node("API Gateway", "gateway")
//	    return err
//	})
//
// # Edges
//
// [Diagram.Connect] records a directed edge between two endpoints (nodes or
// clusters) and returns a [Path] for chaining:
//
//	p, err := d.Connect(web, gateway)
//	p, err = p.Then(orders)          // gateway -> orders
//
// Each chained hop is one edge record. Self-loops and repeated edges are
// allowed; the edge set is an unrestricted directed multigraph over the
// containment tree.
//
// # Lifecycle
//
// Entities are created exactly once and never deleted. [Diagram.Close] seals
// the model, force-closing any scopes left open; construction calls on a
// sealed diagram fail with a SCOPE_VIOLATION error. [Build] wraps the whole
// open-build-close cycle with guaranteed cleanup.
//
// Diagram values are not safe for concurrent construction. Separate Diagram
// values are fully independent and may be built and rendered in parallel.
package diagram
