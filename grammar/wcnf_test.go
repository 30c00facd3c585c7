package grammar_test

import (
	"testing"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasProduction(t *testing.T, cfg grammar.CFG, head string, bodyLen int) bool {
	t.Helper()
	for _, p := range cfg.Productions {
		if p.Head == head && len(p.Body) == bodyLen {
			return true
		}
	}
	return false
}

func TestToWCNFDecomposesLongBody(t *testing.T) {
	cfg := grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.Term("a"), grammar.NT("S"), grammar.Term("b")}},
			{Head: "S"},
		},
	}
	wcnf, err := cfg.ToWCNF()
	require.NoError(t, err)
	for _, p := range wcnf.Productions {
		assert.LessOrEqual(t, len(p.Body), 2)
		if len(p.Body) == 2 {
			assert.False(t, p.Body[0].Terminal, "wcnf binary bodies must be pure nonterminal")
			assert.False(t, p.Body[1].Terminal, "wcnf binary bodies must be pure nonterminal")
		}
	}
	assert.True(t, hasProduction(t, wcnf, "S", 0))
}

func TestToWCNFEliminatesUnitProductions(t *testing.T) {
	cfg := grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.NT("A")}},
			{Head: "A", Body: []grammar.Symbol{grammar.Term("a")}},
		},
	}
	wcnf, err := cfg.ToWCNF()
	require.NoError(t, err)
	for _, p := range wcnf.Productions {
		if len(p.Body) == 1 {
			assert.True(t, p.Body[0].Terminal, "no unit nonterminal productions should survive")
		}
	}
	assert.True(t, hasProduction(t, wcnf, "S", 1))
}

func TestToWCNFRemovesUselessSymbols(t *testing.T) {
	cfg := grammar.CFG{
		Start: "S",
		Productions: []grammar.Production{
			{Head: "S", Body: []grammar.Symbol{grammar.Term("a")}},
			{Head: "Unreachable", Body: []grammar.Symbol{grammar.Term("z")}},
			{Head: "NonGenerating", Body: []grammar.Symbol{grammar.NT("NonGenerating")}},
		},
	}
	wcnf, err := cfg.ToWCNF()
	require.NoError(t, err)
	for _, p := range wcnf.Productions {
		assert.NotEqual(t, "Unreachable", p.Head)
		assert.NotEqual(t, "NonGenerating", p.Head)
	}
}

func TestToWCNFEmptyGrammarErrors(t *testing.T) {
	_, err := grammar.CFG{Start: "S"}.ToWCNF()
	assert.ErrorIs(t, err, grammar.ErrEmptyGrammar)
}
