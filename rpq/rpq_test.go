package rpq_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/rpq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChainGraph(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New()
	edges := [][3]string{
		{"0", "1", "R"},
		{"1", "2", "P"},
		{"2", "3", "Q"},
		{"3", "4", "G"},
		{"4", "5", "R"},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}
	return g
}

func TestRunLinearChain(t *testing.T) {
	g := buildChainGraph(t)
	result, err := rpq.Run(context.Background(), g, "R P Q",
		rpq.WithStartNodes("0"), rpq.WithFinalNodes("3"))
	require.NoError(t, err)
	assert.True(t, result.Contains("0", "3"))
	assert.Len(t, result, 1)
}

func TestRunEmptyRegexYieldsEmpty(t *testing.T) {
	g := buildChainGraph(t)
	result, err := rpq.Run(context.Background(), g, "")
	require.NoError(t, err)
	assert.Empty(t, result)
}

// TestRunStarRegexMatchesEmptyWordAtSameNode guards the trivial
// zero-length case: "R*" accepts the empty word, so every node should be
// reachable from itself even with no self-loop or cycle to witness it
// through TransitiveClosure's one-step-seeded squaring.
func TestRunStarRegexMatchesEmptyWordAtSameNode(t *testing.T) {
	g := buildChainGraph(t)
	result, err := rpq.Run(context.Background(), g, "R*",
		rpq.WithStartNodes("2"), rpq.WithFinalNodes("2"))
	require.NoError(t, err)
	assert.True(t, result.Contains("2", "2"))
}

func TestRunUnknownNode(t *testing.T) {
	g := buildChainGraph(t)
	_, err := rpq.Run(context.Background(), g, "R", rpq.WithStartNodes("zzz"))
	assert.ErrorIs(t, err, rpq.ErrUnknownNode)
}

func TestRunCancelled(t *testing.T) {
	g := buildChainGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rpq.Run(ctx, g, "R P Q", rpq.WithStartNodes("0"), rpq.WithFinalNodes("3"))
	assert.ErrorIs(t, err, rpq.ErrCancelled)
}
