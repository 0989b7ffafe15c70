package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"myjsc/internal/analyzer"
	"myjsc/internal/grammar"
	"myjsc/internal/lexer"
	"myjsc/internal/ll1"
	"myjsc/internal/report"
	"myjsc/internal/symtab"
)

// loadTable builds the real MyJS LL(1) table from the repository's grammar
// file, shared by every scenario below.
func loadTable(t *testing.T) (*grammar.Grammar, *ll1.Table) {
	t.Helper()
	g, err := grammar.Load("../../Gramatica.txt")
	require.NoError(t, err)
	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)
	table, err := ll1.BuildTable(g, first, follow)
	require.NoError(t, err)
	return g, table
}

func analyze(t *testing.T, source string) (*analyzer.Context, *report.ErrorList, *symtab.Table) {
	t.Helper()
	g, table := loadTable(t)
	errs := report.NewErrorList()
	syms := symtab.New()
	toks := lexer.New(source, syms, errs).Tokenize()
	ctx := analyzer.New(g, table, toks, syms, errs)
	ctx.Analyze()
	return ctx, errs, syms
}

func TestAnalyzeAcceptsSimpleFunction(t *testing.T) {
	src := `
function int main() {
  let int x = 3 + 4;
  write(x);
  return x;
}
`
	ctx, errs, syms := analyze(t, src)
	require.Zero(t, errs.Count(report.PhaseSyntactic))
	require.Zero(t, errs.Count(report.PhaseSemantic))
	require.True(t, ctx.Accepted())
	require.NotEmpty(t, ctx.Derivation())

	rec, ok := syms.Resolve("main")
	require.True(t, ok)
	require.Equal(t, symtab.KindFunction, rec.KindHint)
}

func TestAnalyzeRejectsBadAssignment(t *testing.T) {
	src := `
function void main() {
  let string x = 3;
}
`
	_, errs, _ := analyze(t, src)
	require.Zero(t, errs.Count(report.PhaseSyntactic))
	require.NotZero(t, errs.Count(report.PhaseSemantic))
	require.Contains(t, errs.Errors[0].Message, "Asignación incorrecta")
}

func TestAnalyzeRejectsBooleanWrite(t *testing.T) {
	src := `
function void main() {
  write(true);
}
`
	_, errs, _ := analyze(t, src)
	require.NotZero(t, errs.Count(report.PhaseSemantic))
	found := false
	for _, e := range errs.Errors {
		if e.Phase == report.PhaseSemantic {
			require.Contains(t, e.Message, "write() no soporta el tipo boolean")
			found = true
		}
	}
	require.True(t, found)
}

func TestAnalyzeImplicitlyDeclaresUnknownIdentifier(t *testing.T) {
	src := `
function void main() {
  write(y);
}
`
	_, errs, syms := analyze(t, src)
	require.Zero(t, errs.Count(report.PhaseSemantic))
	rec, ok := syms.Resolve("y")
	require.True(t, ok)
	require.True(t, rec.HasType)
	require.Equal(t, "int", rec.Type.Tag)
}

func TestAnalyzeStopsAnalysisOnSyntaxError(t *testing.T) {
	src := `function int main( { }`
	ctx, errs, _ := analyze(t, src)
	require.NotZero(t, errs.Count(report.PhaseSyntactic))
	require.False(t, ctx.Accepted())
}

func TestAnalyzeRejectsCallArgumentMismatch(t *testing.T) {
	src := `
function int add(int a, int b) {
  return a + b;
}
function void main() {
  let float r = add(1.0, 2);
}
`
	_, errs, _ := analyze(t, src)
	require.NotZero(t, errs.Count(report.PhaseSemantic))
}
