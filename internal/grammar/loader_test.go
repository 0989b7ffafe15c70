package grammar_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"myjsc/internal/grammar"
)

func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

func TestLoadMyJSGrammar(t *testing.T) {
	g, err := grammar.Load(filepath.Join(repoRoot(t), "Gramatica.txt"))
	require.NoError(t, err)
	require.Equal(t, grammar.Symbol("Programa"), g.Axiom)
	require.True(t, g.IsNonTerminal("SentIdResto"))
	require.True(t, g.IsTerminal("pluseq"))
	require.True(t, g.IsTerminal("eof"), "eof must be implicitly a terminal")

	alts := g.Alternatives("Tipo")
	require.Len(t, alts, 5)
	require.Equal(t, grammar.Symbol("Tipo"), alts[0].LHS)

	var lambdaSeen bool
	for _, p := range g.Alternatives("ListaDecl") {
		if p.IsLambda() {
			lambdaSeen = true
		}
	}
	require.True(t, lambdaSeen)

	require.Equal(t, 62, len(g.ByNumber)-1)
	first := g.ByNumber[1]
	require.Equal(t, grammar.Symbol("Programa"), first.LHS)
	require.Equal(t, []grammar.Symbol{"ListaDecl"}, first.RHS)
}

func TestLoadRejectsMissingSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	writeFile(t, path, "NoTerminales = { A }\nAxioma = A\nProducciones = { A -> lambda }\n")
	_, err := grammar.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnknownSymbol(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	writeFile(t, path, "Terminales = { a }\nNoTerminales = { A }\nAxioma = A\nProducciones = { A -> b }\n")
	_, err := grammar.Load(path)
	require.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
