package digraphbuilder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/pathql/digraph"
)

// Random builds an Erdős–Rényi-style random digraph over n vertices:
// every ordered pair (i, j) with i != j is independently given an edge
// with probability p, labeled by cycling through the configured labels in
// trial order. Panics if n is negative, p is outside [0, 1], or rng is
// nil — callers own determinism by supplying their own *rand.Rand.
func Random(n int, p float64, rng *rand.Rand, opts ...Option) *digraph.Graph {
	if n < 0 {
		panic("digraphbuilder: Random requires a non-negative vertex count")
	}
	if p < 0 || p > 1 {
		panic("digraphbuilder: Random requires p in [0, 1]")
	}
	if rng == nil {
		panic("digraphbuilder: Random requires a non-nil rng")
	}
	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}

	g := digraph.New()
	id := func(i int) string { return c.idPrefix + strconv.Itoa(i) }
	for i := 0; i < n; i++ {
		_ = g.AddVertex(id(i))
	}

	labelIdx := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				label := c.labels[labelIdx%len(c.labels)]
				labelIdx++
				_, _ = g.AddEdge(id(i), id(j), label)
			}
		}
	}
	return g
}
