package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"myjsc/internal/lexer"
	"myjsc/internal/report"
	"myjsc/internal/symtab"
	"myjsc/internal/token"
)

func TestTokenizeBasic(t *testing.T) {
	syms := symtab.New()
	errs := report.NewErrorList()
	src := "let int x = 3 + 4;"
	toks := lexer.New(src, syms, errs).Tokenize()

	require.False(t, errs.HasErrors())
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []token.Kind{
		token.KindLet, token.KindInt, token.KindID, token.KindEq,
		token.KindIntConst, token.KindSum, token.KindIntConst, token.KindSemicolon,
		token.KindEOF,
	}, kinds)
}

func TestTokenizeInternsIdentifierOnce(t *testing.T) {
	syms := symtab.New()
	errs := report.NewErrorList()
	toks := lexer.New("x x", syms, errs).Tokenize()
	require.False(t, errs.HasErrors())
	require.Equal(t, toks[0].Attr, toks[1].Attr)
	require.Equal(t, 1, syms.Len())
}

func TestTokenizeDropsOutOfRangeIntLiteral(t *testing.T) {
	syms := symtab.New()
	errs := report.NewErrorList()
	toks := lexer.New("99999", syms, errs).Tokenize()
	require.True(t, errs.HasErrors())
	require.Equal(t, report.PhaseLexical, errs.Errors[0].Phase)
	require.Equal(t, token.KindEOF, toks[0].Kind, "the out-of-range literal must not appear in the stream")
}

func TestTokenizeStringLiteral(t *testing.T) {
	syms := symtab.New()
	errs := report.NewErrorList()
	toks := lexer.New("'hello'", syms, errs).Tokenize()
	require.False(t, errs.HasErrors())
	require.Equal(t, token.KindStr, toks[0].Kind)
	require.Equal(t, token.Str("hello"), toks[0].Attr)
}

func TestTokenizeReportsUnexpectedCharacter(t *testing.T) {
	syms := symtab.New()
	errs := report.NewErrorList()
	toks := lexer.New("x @ y", syms, errs).Tokenize()
	require.True(t, errs.HasErrors())
	require.Equal(t, token.KindID, toks[0].Kind)
	require.Equal(t, token.KindID, toks[1].Kind)
}
