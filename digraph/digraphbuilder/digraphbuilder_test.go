package digraphbuilder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathql/digraph/digraphbuilder"
	"github.com/stretchr/testify/assert"
)

func TestTwoCycles(t *testing.T) {
	g := digraphbuilder.TwoCycles(2, 1, digraphbuilder.WithLabels("a", "b"))
	// hub + 2 + 1 = 4 vertices; 3 + 2 = 5 edges.
	assert.Len(t, g.Vertices(), 4)
	assert.Len(t, g.Edges(), 5)
}

func TestTwoCyclesPanicsOnTooFewLabels(t *testing.T) {
	assert.Panics(t, func() {
		digraphbuilder.TwoCycles(1, 1, digraphbuilder.WithLabels("a"))
	})
}

func TestPath(t *testing.T) {
	g := digraphbuilder.Path(3, digraphbuilder.WithLabels("x"))
	assert.Len(t, g.Vertices(), 4)
	assert.Len(t, g.Edges(), 3)
	for _, e := range g.Edges() {
		assert.Equal(t, "x", e.Label)
	}
}

func TestGrid(t *testing.T) {
	g := digraphbuilder.Grid(2, 2, digraphbuilder.WithLabels("r", "d"))
	assert.Len(t, g.Vertices(), 4)
	assert.Len(t, g.Edges(), 4) // 2 right + 2 down
}

func TestGridPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() {
		digraphbuilder.Grid(0, 2, digraphbuilder.WithLabels("a", "b"))
	})
}

func TestRandomDeterministicForFixedSeed(t *testing.T) {
	g1 := digraphbuilder.Random(5, 0.5, rand.New(rand.NewSource(42)), digraphbuilder.WithLabels("a", "b"))
	g2 := digraphbuilder.Random(5, 0.5, rand.New(rand.NewSource(42)), digraphbuilder.WithLabels("a", "b"))
	assert.Equal(t, len(g1.Edges()), len(g2.Edges()))
	assert.Len(t, g1.Vertices(), 5)
}

func TestRandomExtremesProduceNoOrCompleteEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	empty := digraphbuilder.Random(4, 0, rng, digraphbuilder.WithLabels("a"))
	assert.Empty(t, empty.Edges())

	complete := digraphbuilder.Random(4, 1, rng, digraphbuilder.WithLabels("a"))
	assert.Len(t, complete.Edges(), 4*3)
}

func TestRandomPanicsOnInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { digraphbuilder.Random(-1, 0.5, rng) })
	assert.Panics(t, func() { digraphbuilder.Random(3, 1.5, rng) })
	assert.Panics(t, func() { digraphbuilder.Random(3, 0.5, nil) })
}
