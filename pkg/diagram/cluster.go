package diagram

// Cluster is a named, nestable grouping of nodes and clusters. A cluster is
// itself a valid edge endpoint from the moment it is opened; an edge to or
// from a cluster means "to/from the cluster as a visual group", not to a
// specific member.
//
// Two clusters with the same title at the same nesting level are always
// distinct: identity is the creation-order handle, never the title.
type Cluster struct {
	id       string
	title    string
	children []Endpoint
	d        *Diagram
	open     bool
}

// ID returns the cluster's unique handle. The handle is stable for the
// cluster's whole lifetime, independent of what is later added inside it.
func (c *Cluster) ID() string { return c.id }

// Title returns the cluster's display title.
func (c *Cluster) Title() string { return c.title }

// Label returns the display title, satisfying [Endpoint].
func (c *Cluster) Label() string { return c.title }

// Children returns the cluster's ordered child entries (nodes and nested
// clusters). The returned slice is a copy.
func (c *Cluster) Children() []Endpoint {
	out := make([]Endpoint, len(c.children))
	copy(out, c.children)
	return out
}

// Node creates a node inside this cluster. The cluster must still be open.
func (c *Cluster) Node(label, kind string) (*Node, error) {
	return c.d.nodeIn(c, label, kind)
}

// Cluster opens a nested cluster inside this cluster using the closure form.
// The nested scope is closed on every exit path; see [Diagram.Cluster].
func (c *Cluster) Cluster(title string, build func(*Cluster) error) (*Cluster, error) {
	return c.d.Cluster(title, build)
}

func (c *Cluster) diagram() *Diagram { return c.d }
