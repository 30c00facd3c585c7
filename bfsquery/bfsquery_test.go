package bfsquery_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pathql/bfsquery"
	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/regexfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainGraph builds 0 -a-> 1 -a-> 2 -a-> 3, so "a*" run from {0} should
// reach every node including 0 itself (zero-length path).
func chainGraph(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New()
	for _, e := range [][3]string{{"0", "1", "a"}, {"1", "2", "a"}, {"2", "3", "a"}} {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}
	return g
}

func TestRunStarReachesWholeChain(t *testing.T) {
	g := chainGraph(t)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a*")
	require.NoError(t, err)

	res, err := bfsquery.Run(context.Background(), ctrlABM, dataABM, []string{"0"})
	require.NoError(t, err)
	assert.Contains(t, res.Nodes, "0")
	assert.Contains(t, res.Nodes, "1")
	assert.Contains(t, res.Nodes, "2")
	assert.Contains(t, res.Nodes, "3")
	assert.Len(t, res.Nodes, 4)
}

func TestRunLiteralFixedHop(t *testing.T) {
	g := chainGraph(t)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a a")
	require.NoError(t, err)

	res, err := bfsquery.Run(context.Background(), ctrlABM, dataABM, []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, bfsquery.NodeSet{"2": struct{}{}}, res.Nodes)
}

func TestRunSeparateModeKeepsSourcesDistinct(t *testing.T) {
	g := digraph.New()
	_, err := g.AddEdge("0", "2", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "3", "a")
	require.NoError(t, err)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a")
	require.NoError(t, err)

	res, err := bfsquery.Run(context.Background(), ctrlABM, dataABM, []string{"0", "1"}, bfsquery.WithSeparate())
	require.NoError(t, err)
	assert.True(t, res.Pairs.Contains("0", "2"))
	assert.True(t, res.Pairs.Contains("1", "3"))
	assert.False(t, res.Pairs.Contains("0", "3"))
	assert.False(t, res.Pairs.Contains("1", "2"))
}

// TestRunDropsUnmatchedSourceSymbol guards against re-introducing a
// constraint-only advance: node 0 has only a "b" edge out (to 2), none
// labeled "a". Against "a|b" from source {0}, the "a" branch of the
// constraint automaton must not be allowed to advance on its own — only
// the "b" branch, paired with the matching data edge, should count. The
// only reachable node is therefore "2"; node "0" itself must not appear.
func TestRunDropsUnmatchedSourceSymbol(t *testing.T) {
	g := digraph.New()
	_, err := g.AddEdge("1", "2", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("0", "2", "b")
	require.NoError(t, err)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a|b")
	require.NoError(t, err)

	res, err := bfsquery.Run(context.Background(), ctrlABM, dataABM, []string{"0"})
	require.NoError(t, err)
	assert.Equal(t, bfsquery.NodeSet{"2": struct{}{}}, res.Nodes)
}

func TestRunUnknownSource(t *testing.T) {
	g := chainGraph(t)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a")
	require.NoError(t, err)

	_, err = bfsquery.Run(context.Background(), ctrlABM, dataABM, []string{"zzz"})
	assert.ErrorIs(t, err, bfsquery.ErrUnknownNode)
}

func TestRunNoSharedSymbolsIsEmpty(t *testing.T) {
	g := chainGraph(t)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("z")
	require.NoError(t, err)

	res, err := bfsquery.Run(context.Background(), ctrlABM, dataABM, []string{"0"})
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
}

func TestRunCancelled(t *testing.T) {
	g := chainGraph(t)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a*")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfsquery.Run(ctx, ctrlABM, dataABM, []string{"0"})
	assert.ErrorIs(t, err, bfsquery.ErrCancelled)
}
