package cfpq_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dyckGraph builds 0 -a-> 1 -b-> 0, a two-edge cycle whose label sequence
// "ab" is a balanced-bracket word under S -> a S b | eps.
func dyckGraph(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New()
	_, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "0", "b")
	require.NoError(t, err)
	return g
}

func dyckGrammar() grammar.CFG {
	return grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.Term("a"), grammar.NT("S"), grammar.Term("b")}},
			{Head: "S"},
		},
	}
}

func TestRunHellingsDyckLanguage(t *testing.T) {
	g := dyckGraph(t)
	result, err := cfpq.Run(context.Background(), dyckGrammar(), g)
	require.NoError(t, err)
	// S derives the empty string at every node (0,0) and (1,1), and the
	// single "a b" round trip 0->1->0 folds back to (0,0); no word in the
	// language spells a path that ends at a different node than it starts.
	assert.True(t, result.Contains("0", "0"))
	assert.True(t, result.Contains("1", "1"))
	assert.False(t, result.Contains("0", "1"))
	assert.False(t, result.Contains("1", "0"))
	assert.Len(t, result, 2)
}

func TestRunMatrixMatchesHellings(t *testing.T) {
	g := dyckGraph(t)
	hellingsRes, err := cfpq.Run(context.Background(), dyckGrammar(), g, cfpq.WithAlgorithm(cfpq.Hellings))
	require.NoError(t, err)
	matrixRes, err := cfpq.Run(context.Background(), dyckGrammar(), g, cfpq.WithAlgorithm(cfpq.Matrix))
	require.NoError(t, err)
	assert.Equal(t, hellingsRes, matrixRes)
}

func TestRunTensorMatchesHellings(t *testing.T) {
	g := dyckGraph(t)
	hellingsRes, err := cfpq.Run(context.Background(), dyckGrammar(), g, cfpq.WithAlgorithm(cfpq.Hellings))
	require.NoError(t, err)
	tensorRes, err := cfpq.Run(context.Background(), dyckGrammar(), g, cfpq.WithAlgorithm(cfpq.Tensor))
	require.NoError(t, err)
	assert.Equal(t, hellingsRes, tensorRes)
}

func TestRunFiltersStartFinalNodes(t *testing.T) {
	g := dyckGraph(t)
	result, err := cfpq.Run(context.Background(), dyckGrammar(), g,
		cfpq.WithStartNodes("0"), cfpq.WithFinalNodes("0"))
	require.NoError(t, err)
	assert.True(t, result.Contains("0", "0"))
	assert.Len(t, result, 1)
}

func TestRunUnknownNode(t *testing.T) {
	g := dyckGraph(t)
	_, err := cfpq.Run(context.Background(), dyckGrammar(), g, cfpq.WithStartNodes("zzz"))
	assert.ErrorIs(t, err, cfpq.ErrUnknownNode)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	g := dyckGraph(t)
	_, err := cfpq.Run(context.Background(), dyckGrammar(), g, cfpq.WithAlgorithm(cfpq.Algorithm(99)))
	assert.ErrorIs(t, err, cfpq.ErrUnknownAlgorithm)
}

func TestRunCancelled(t *testing.T) {
	g := dyckGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := cfpq.Run(ctx, dyckGrammar(), g)
	assert.ErrorIs(t, err, cfpq.ErrCancelled)
}
