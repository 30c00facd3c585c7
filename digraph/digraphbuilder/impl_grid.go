package digraphbuilder

import (
	"fmt"

	"github.com/katalvlaran/pathql/digraph"
)

// Grid builds a rows×cols grid with edges going right (first configured
// label) and down (second configured label), node IDs "r,c". Panics if
// rows or cols is non-positive, or fewer than two labels are configured.
func Grid(rows, cols int, opts ...Option) *digraph.Graph {
	if rows <= 0 || cols <= 0 {
		panic("digraphbuilder: Grid requires positive rows and cols")
	}
	c := newConfig()
	for _, opt := range opts {
		opt(c)
	}
	if len(c.labels) < 2 {
		panic("digraphbuilder: Grid requires at least two labels (right, down)")
	}

	g := digraph.New()
	id := func(r, cc int) string { return c.idPrefix + fmt.Sprintf("%d,%d", r, cc) }
	for r := 0; r < rows; r++ {
		for cc := 0; cc < cols; cc++ {
			_ = g.AddVertex(id(r, cc))
			if cc+1 < cols {
				_, _ = g.AddEdge(id(r, cc), id(r, cc+1), c.labels[0])
			}
			if r+1 < rows {
				_, _ = g.AddEdge(id(r, cc), id(r+1, cc), c.labels[1])
			}
		}
	}
	return g
}
