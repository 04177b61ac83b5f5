// Package manifest loads declarative topology files and builds diagrams
// from them.
//
// A manifest is a YAML document describing the diagram: title, layout
// direction, nodes, nested clusters, and edges. Nodes and clusters carry a
// manifest-local name used to reference them as edge endpoints:
//
//	title: Online Marketplace
//	direction: top-to-bottom
//	output: marketplace.svg
//
//	nodes:
//	  - name: internet
//	    label: Internet
//	    kind: network
//
//	clusters:
//	  - name: clients
//	    title: Clients
//	    nodes:
//	      - name: web
//	        label: Web Clients
//	        kind: browser
//
//	edges:
//	  - from: web
//	    to: internet
//	  - path: [internet, gateway, orders]   # chain sugar: one edge per hop
//	  - from: orders
//	    to: clients
//	    label: callback
//	    bidirectional: true
//
// Malformed manifests fail with INVALID_MANIFEST errors that name the
// offending entity.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/diagraph/diagraph/pkg/diagram"
	"github.com/diagraph/diagraph/pkg/errors"
)

// Manifest is the root of a topology file.
type Manifest struct {
	Title     string    `yaml:"title"`
	Direction string    `yaml:"direction,omitempty"`
	Output    string    `yaml:"output,omitempty"`
	Nodes     []NodeDef `yaml:"nodes,omitempty"`
	Clusters  []Cluster `yaml:"clusters,omitempty"`
	Edges     []EdgeDef `yaml:"edges,omitempty"`
}

// NodeDef declares a node. Name is the manifest-local reference used by
// edges; Label defaults to Name when omitted.
type NodeDef struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
}

// Cluster declares a cluster with optional nested clusters. Name is optional;
// a named cluster can be used as an edge endpoint.
type Cluster struct {
	Name     string    `yaml:"name,omitempty"`
	Title    string    `yaml:"title"`
	Nodes    []NodeDef `yaml:"nodes,omitempty"`
	Clusters []Cluster `yaml:"clusters,omitempty"`
}

// EdgeDef declares either a single edge (From/To) or a straight-line path
// (Path) that expands to one edge per consecutive pair. Label and
// Bidirectional apply to every edge the entry produces.
type EdgeDef struct {
	From          string   `yaml:"from,omitempty"`
	To            string   `yaml:"to,omitempty"`
	Path          []string `yaml:"path,omitempty"`
	Label         string   `yaml:"label,omitempty"`
	Bidirectional bool     `yaml:"bidirectional,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a manifest from r. Unknown fields are rejected so typos
// surface as errors instead of silently dropped configuration.
func Read(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Title == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest has no title")
	}
	if _, err := diagram.ParseDirection(m.Direction); err != nil {
		return err
	}
	for _, e := range m.Edges {
		switch {
		case len(e.Path) > 0:
			if e.From != "" || e.To != "" {
				return errors.New(errors.ErrCodeInvalidManifest,
					"edge cannot combine path with from/to")
			}
			if len(e.Path) < 2 {
				return errors.New(errors.ErrCodeInvalidManifest,
					"edge path needs at least two endpoints, got %d", len(e.Path))
			}
		case e.From == "" || e.To == "":
			return errors.New(errors.ErrCodeInvalidManifest,
				"edge needs both from and to (or a path)")
		}
	}
	return nil
}

// Build constructs a sealed diagram from the manifest. Construction errors
// abort immediately; no partial diagram is returned.
func (m *Manifest) Build() (*diagram.Diagram, error) {
	dir, err := diagram.ParseDirection(m.Direction)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]diagram.Endpoint)
	return diagram.Build(m.Title, func(d *diagram.Diagram) error {
		for _, nd := range m.Nodes {
			if err := addNode(d, nil, nd, refs); err != nil {
				return err
			}
		}
		for _, cd := range m.Clusters {
			if err := addCluster(d, cd, refs); err != nil {
				return err
			}
		}
		return m.wire(d, refs)
	}, diagram.WithDirection(dir))
}

func addNode(d *diagram.Diagram, parent *diagram.Cluster, nd NodeDef, refs map[string]diagram.Endpoint) error {
	if nd.Name == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "node has no name")
	}
	if _, dup := refs[nd.Name]; dup {
		return errors.New(errors.ErrCodeInvalidManifest, "duplicate name %q", nd.Name)
	}
	label := nd.Label
	if label == "" {
		label = nd.Name
	}

	var (
		n   *diagram.Node
		err error
	)
	if parent != nil {
		n, err = parent.Node(label, nd.Kind)
	} else {
		n, err = d.Node(label, nd.Kind)
	}
	if err != nil {
		return err
	}
	refs[nd.Name] = n
	return nil
}

func addCluster(d *diagram.Diagram, cd Cluster, refs map[string]diagram.Endpoint) error {
	if cd.Title == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "cluster has no title")
	}
	if cd.Name != "" {
		if _, dup := refs[cd.Name]; dup {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate name %q", cd.Name)
		}
		// Reserve the name before descending so nested duplicates are caught.
		refs[cd.Name] = nil
	}

	c, err := d.Cluster(cd.Title, func(c *diagram.Cluster) error {
		for _, nd := range cd.Nodes {
			if err := addNode(d, c, nd, refs); err != nil {
				return err
			}
		}
		for _, nested := range cd.Clusters {
			if err := addCluster(d, nested, refs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cd.Name != "" {
		refs[cd.Name] = c
	}
	return nil
}

// wire creates the manifest's edges. Path entries expand left to right, one
// edge record per hop.
func (m *Manifest) wire(d *diagram.Diagram, refs map[string]diagram.Endpoint) error {
	for _, e := range m.Edges {
		hops := [][2]string{{e.From, e.To}}
		if len(e.Path) > 0 {
			hops = hops[:0]
			for i := 0; i+1 < len(e.Path); i++ {
				hops = append(hops, [2]string{e.Path[i], e.Path[i+1]})
			}
		}

		var opts []diagram.EdgeOption
		if e.Label != "" {
			opts = append(opts, diagram.WithLabel(e.Label))
		}
		if e.Bidirectional {
			opts = append(opts, diagram.Bidirectional())
		}

		for _, hop := range hops {
			src, ok := refs[hop[0]]
			if !ok || src == nil {
				return errors.New(errors.ErrCodeInvalidManifest, "edge references unknown name %q", hop[0])
			}
			dst, ok := refs[hop[1]]
			if !ok || dst == nil {
				return errors.New(errors.ErrCodeInvalidManifest, "edge references unknown name %q", hop[1])
			}
			if _, err := d.Connect(src, dst, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}
