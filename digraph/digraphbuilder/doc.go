// Package digraphbuilder provides functional-options constructors for
// synthetic labeled graphs, used by tests and examples across the query
// engine. Contract mirrors lvlath/builder: options are
// Option func(*config), constructors validate and panic on meaningless
// input (an empty label set, a negative size, a non-positive grid
// dimension, an edge probability outside [0, 1]), algorithms themselves
// never panic.
package digraphbuilder
