package automata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"myjsc/internal/automata"
	"myjsc/internal/lexspec"
)

func run(dfa *automata.DFA, input string) (matched string, tokenName string, ok bool) {
	state := dfa.InitialState
	lastAcceptLen := -1
	lastAcceptToken := ""
	for i, r := range input {
		next := dfa.NextState(state, r)
		if next == "" {
			break
		}
		state = next
		if dfa.IsAccepting(state) {
			lastAcceptLen = i + 1
			lastAcceptToken = dfa.TokenName(state)
		}
	}
	if lastAcceptLen < 0 {
		return "", "", false
	}
	return input[:lastAcceptLen], lastAcceptToken, true
}

func TestCompileLexicalGrammarLongestMatch(t *testing.T) {
	g := lexspec.LexicalGrammar{Tokens: []lexspec.TokenDefinition{
		{Name: "id", Priority: 0, Pattern: lexspec.Seq(
			lexspec.Alt(lexspec.CharRange{From: 'a', To: 'z'}, lexspec.CharRange{From: 'A', To: 'Z'}),
			lexspec.LexZeroOrMore{Inner: lexspec.Alt(
				lexspec.CharRange{From: 'a', To: 'z'},
				lexspec.CharRange{From: 'A', To: 'Z'},
				lexspec.CharRange{From: '0', To: '9'},
			)},
		)},
		{Name: "intconst", Priority: 0, Pattern: lexspec.LexOneOrMore{Inner: lexspec.CharRange{From: '0', To: '9'}}},
	}}

	dfa := automata.CompileLexicalGrammar(g)

	matched, token, ok := run(&dfa, "abc123 ")
	require.True(t, ok)
	require.Equal(t, "abc123", matched)
	require.Equal(t, "id", token)

	matched, token, ok = run(&dfa, "987;")
	require.True(t, ok)
	require.Equal(t, "987", matched)
	require.Equal(t, "intconst", token)
}

func TestCompileLexicalGrammarPriorityBreaksTie(t *testing.T) {
	g := lexspec.LexicalGrammar{Tokens: []lexspec.TokenDefinition{
		{Name: "id", Priority: 0, Pattern: lexspec.LexOneOrMore{Inner: lexspec.CharRange{From: 'a', To: 'z'}}},
		{Name: "kw_if", Priority: 1, Pattern: lexspec.Literal("if")},
	}}
	dfa := automata.CompileLexicalGrammar(g)

	_, token, ok := run(&dfa, "if")
	require.True(t, ok)
	require.Equal(t, "kw_if", token)
}
