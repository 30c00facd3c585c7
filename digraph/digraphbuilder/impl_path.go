package digraphbuilder

import (
	"strconv"

	"github.com/katalvlaran/pathql/digraph"
)

// Path builds a simple directed path 0 -> 1 -> ... -> n, cycling through
// the configured labels for successive edges. Panics if n is negative.
func Path(n int, opts ...Option) *digraph.Graph {
	if n < 0 {
		panic("digraphbuilder: Path requires a non-negative length")
	}
	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}

	g := digraph.New()
	prev := c.idPrefix + "0"
	_ = g.AddVertex(prev)
	for i := 1; i <= n; i++ {
		cur := c.idPrefix + strconv.Itoa(i)
		label := c.labels[(i-1)%len(c.labels)]
		_, _ = g.AddEdge(prev, cur, label)
		prev = cur
	}
	return g
}
