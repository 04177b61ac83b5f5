package diagram

// Node is a leaf entity representing one labeled component in the diagram.
// Nodes are created through a scope ([Diagram.Node] or [Cluster.Node]) and
// are immutable afterwards. Labels are display text only and need not be
// unique; every node gets a fresh internally-unique handle.
type Node struct {
	id    string
	label string
	kind  string
	d     *Diagram
}

// ID returns the node's unique handle within its diagram.
func (n *Node) ID() string { return n.id }

// Label returns the display label.
func (n *Node) Label() string { return n.label }

// Kind returns the logical kind tag used for icon selection (e.g. "compute",
// "relational-store", "queue"). The tag is not load-bearing for layout.
func (n *Node) Kind() string { return n.kind }

func (n *Node) diagram() *Diagram { return n.d }
