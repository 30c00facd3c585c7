package digraphbuilder

import (
	"strconv"

	"github.com/katalvlaran/pathql/digraph"
)

// TwoCycles builds two cycles sharing a single common node 0: the first
// cycle has n1 additional nodes labeled with the first WithLabels entry,
// the second has n2 additional nodes labeled with the second. Panics if
// n1 or n2 is negative, or if fewer than two labels are configured.
//
// Grounded on the original project's create_labeled_two_cycle_graph
// (cfpq_data.labeled_two_cycles_graph): a shared hub node 0, two rings
// radiating from it, each edge-labeled uniformly per ring.
func TwoCycles(n1, n2 int, opts ...Option) *digraph.Graph {
	if n1 < 0 || n2 < 0 {
		panic("digraphbuilder: TwoCycles requires non-negative cycle sizes")
	}
	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}
	if len(c.labels) < 2 {
		panic("digraphbuilder: TwoCycles requires at least two labels (one per cycle)")
	}

	g := digraph.New()
	hub := c.idPrefix + "0"
	_ = g.AddVertex(hub)

	// Each ring's non-hub nodes get a disjoint numeric range so the two
	// rings never collide on a node other than the shared hub.
	addRing(g, hub, 0, n1, c.idPrefix, c.labels[0])
	addRing(g, hub, n1, n2, c.idPrefix, c.labels[1])

	return g
}

func addRing(g *digraph.Graph, hub string, offset, count int, idPrefix, label string) {
	prev := hub
	for i := 1; i <= count; i++ {
		cur := idPrefix + strconv.Itoa(offset+i)
		_, _ = g.AddEdge(prev, cur, label)
		prev = cur
	}
	_, _ = g.AddEdge(prev, hub, label)
}
