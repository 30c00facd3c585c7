package pathql_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/pathql/digraph"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/pathql"
	"github.com/katalvlaran/pathql/regexfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New()
	_, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	return g
}

func TestRunRPQDelegatesToRPQPackage(t *testing.T) {
	g := buildChain(t)
	result, err := pathql.RunRPQ(context.Background(), g, "a")
	require.NoError(t, err)
	assert.True(t, result.Contains("0", "1"))
}

func TestRunBFSDelegatesToBFSQueryPackage(t *testing.T) {
	g := buildChain(t)
	dataABM, err := g.ToABM(nil, nil)
	require.NoError(t, err)
	ctrlABM, err := regexfa.Compile("a")
	require.NoError(t, err)

	res, err := pathql.RunBFS(context.Background(), ctrlABM, dataABM, []string{"0"})
	require.NoError(t, err)
	assert.Contains(t, res.Nodes, "1")
}

func TestRunCFPQDelegatesToCFPQPackage(t *testing.T) {
	g := buildChain(t)
	cfg := grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.Term("a")}},
		},
	}
	result, err := pathql.RunCFPQ(context.Background(), cfg, g)
	require.NoError(t, err)
	assert.True(t, result.Contains("0", "1"))
}
