package diagram_test

import (
	"fmt"

	"github.com/diagraph/diagraph/pkg/diagram"
)

func ExampleBuild() {
	d, err := diagram.Build("Web Service", func(d *diagram.Diagram) error {
		lb, err := d.Node("Load Balancer", "network")
		if err != nil {
			return err
		}

		var api *diagram.Node
		backend, err := d.Cluster("Backend", func(c *diagram.Cluster) error {
			api, err = c.Node("API Server", "compute")
			return err
		})
		if err != nil {
			return err
		}

		db, err := d.Node("Postgres", "relational-store")
		if err != nil {
			return err
		}

		// Chain edges hop by hop: lb -> api -> db.
		p, err := d.Connect(lb, api)
		if err != nil {
			return err
		}
		if _, err := p.Then(db, diagram.WithLabel("SQL")); err != nil {
			return err
		}

		// Clusters are endpoints too.
		_, err = d.Connect(db, backend, diagram.WithLabel("notify"))
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("nodes=%d clusters=%d edges=%d closed=%v\n",
		d.NodeCount(), d.ClusterCount(), d.EdgeCount(), d.Closed())
	// Output:
	// nodes=3 clusters=1 edges=3 closed=true
}

func ExampleDiagram_Cluster() {
	d := diagram.New("Nested Scopes")

	_, err := d.Cluster("Region", func(region *diagram.Cluster) error {
		_, err := region.Cluster("Zone A", func(zone *diagram.Cluster) error {
			_, err := zone.Node("vm-1", "compute")
			return err
		})
		return err
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, root := range d.Roots() {
		fmt.Println(root.Label())
	}
	// Output:
	// Region
}
