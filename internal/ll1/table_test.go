package ll1_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"myjsc/internal/grammar"
	"myjsc/internal/ll1"
)

func loadMyJS(t *testing.T) *grammar.Grammar {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	root := filepath.Join(filepath.Dir(file), "..", "..")
	g, err := grammar.Load(filepath.Join(root, "Gramatica.txt"))
	require.NoError(t, err)
	return g
}

func TestFirstAndFollowOnMyJSGrammar(t *testing.T) {
	g := loadMyJS(t)
	first := ll1.ComputeFirst(g)

	require.ElementsMatch(t, []grammar.Symbol{"int", "float", "boolean", "string", "void"}, first.Get("Tipo"))
	require.True(t, first.IsNullable("ListaDecl"))
	require.True(t, first.IsNullable("DeclVarResto"))
	require.False(t, first.IsNullable("Tipo"))

	follow := ll1.ComputeFollow(g, first)
	require.Contains(t, follow.Get("Programa"), grammar.Symbol("eof"))
}

func TestMyJSGrammarIsLL1(t *testing.T) {
	g := loadMyJS(t)
	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)

	table, err := ll1.BuildTable(g, first, follow)
	require.NoError(t, err, "MyJS grammar must be LL(1)")

	require.NotNil(t, table.Lookup("Tipo", "int"))
	require.NotNil(t, table.Lookup("SentIdResto", "eq"))
	require.NotNil(t, table.Lookup("SentIdResto", "pluseq"))
	require.NotNil(t, table.Lookup("SentIdResto", "oppar"))
	require.NotNil(t, table.Lookup("SentIfResto", "else"))
	// lambda alternative of SentIfResto applies on any token that can
	// follow an if-statement without an else branch.
	require.NotNil(t, table.Lookup("SentIfResto", "clbra"))
}

func TestTableRejectsAmbiguousGrammar(t *testing.T) {
	g := &grammar.Grammar{
		Terminals:    map[grammar.Symbol]bool{"a": true},
		NonTerminals: map[grammar.Symbol]bool{"S": true},
		Axiom:        "S",
		Productions:  map[grammar.Symbol][]*grammar.Production{},
	}
	p1 := &grammar.Production{LHS: "S", RHS: []grammar.Symbol{"a"}, Number: 1}
	p2 := &grammar.Production{LHS: "S", RHS: []grammar.Symbol{"a", "a"}, Number: 2}
	g.Productions["S"] = []*grammar.Production{p1, p2}
	g.ByNumber = []*grammar.Production{nil, p1, p2}

	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)
	_, err := ll1.BuildTable(g, first, follow)
	require.Error(t, err)
}
