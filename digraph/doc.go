// Package digraph is your in-memory representation of a labeled directed
// multigraph — the data side of every path query in this engine.
//
//	core/      (lvlath) inspiration — thread-safe Graph/Vertex/Edge, here
//	           specialized to carry a terminal-symbol Label instead of a
//	           numeric Weight, since that's what the query engine reads.
//
// Concurrency: Graph is safe for concurrent AddVertex/AddEdge/reads across
// goroutines via muVert/muEdge. Once handed to a query evaluator it is
// treated as read-only for the query's duration.
package digraph
