package digraph

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteDOT writes a Graphviz DOT rendering of the graph for debugging. It
// has no bearing on query semantics — a one-way export, mirroring the
// original project's utils.write_to_dot.
func (g *Graph) WriteDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	verts := g.Vertices()
	sort.Strings(verts)
	for _, v := range verts {
		if _, err := fmt.Fprintf(w, "  %q;\n", v); err != nil {
			return err
		}
	}
	edges := g.Edges()
	// Edge.ID is "e<n>": sort by the numeric suffix, not lexicographically,
	// so e2 precedes e10 once a graph has more than nine edges.
	sort.Slice(edges, func(i, j int) bool { return edgeSeq(edges[i].ID) < edgeSeq(edges[j].ID) })
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// edgeSeq extracts the numeric sequence from an edge ID of the form
// "e<n>". Malformed IDs (never produced by AddEdge) sort last.
func edgeSeq(id string) uint64 {
	n, err := strconv.ParseUint(strings.TrimPrefix(id, edgeIDPrefix), 10, 64)
	if err != nil {
		return ^uint64(0)
	}
	return n
}
