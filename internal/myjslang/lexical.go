// Package myjslang expresses MyJS's concrete lexical grammar — identifiers,
// numeric and string literals, and the fixed operator/punctuation set — as
// internal/lexspec patterns, the counterpart to tunascript/lexer.go's
// regularModeMatchRules table for this language's token set.
//
// Keywords are deliberately NOT part of this grammar: they are recognized by
// scanning an identifier and then consulting internal/token.ReservedWord,
// matching btouchard-gmx/internal/compiler/lexer/lexer.go's readIdentifier ->
// keywords map lookup rather than multiplying the DFA with one literal
// pattern per keyword.
package myjslang

import "myjsc/internal/lexspec"

// Token names produced by the compiled DFA. internal/lexer maps these back
// onto token.Kind.
const (
	TokID         = "id"
	TokIntConst   = "intconst"
	TokFloatConst = "floatconst"
	TokStr        = "str"
	TokPlusEq     = "pluseq"
	TokEq         = "eq"
	TokComma      = "comma"
	TokSemicolon  = "semicolon"
	TokOpPar      = "oppar"
	TokClPar      = "clpar"
	TokOpBra      = "opbra"
	TokClBra      = "clbra"
	TokSum        = "sum"
	TokAnd        = "and"
	TokMinorThan  = "minorthan"
)

func letter() lexspec.Pattern {
	return lexspec.Alt(
		lexspec.CharRange{From: 'a', To: 'z'},
		lexspec.CharRange{From: 'A', To: 'Z'},
		lexspec.Literal("_"),
	)
}

func digit() lexspec.Pattern {
	return lexspec.CharRange{From: '0', To: '9'}
}

func alnum() lexspec.Pattern {
	return lexspec.Alt(letter(), digit())
}

// Grammar is MyJS's complete lexical grammar. Every token definition except
// "id" has priority 0; "id" is lowest so that, should a keyword ever be
// folded into this DFA, it naturally wins a same-length tie — though today
// keywords are resolved after the fact, not via the DFA (see package doc).
func Grammar() lexspec.LexicalGrammar {
	return lexspec.LexicalGrammar{Tokens: []lexspec.TokenDefinition{
		{Name: TokID, Priority: -1, Pattern: lexspec.Seq(letter(), lexspec.LexZeroOrMore{Inner: alnum()})},
		{Name: TokFloatConst, Priority: 0, Pattern: lexspec.Seq(
			lexspec.LexOneOrMore{Inner: digit()},
			lexspec.Literal("."),
			lexspec.LexOneOrMore{Inner: digit()},
		)},
		{Name: TokIntConst, Priority: 0, Pattern: lexspec.LexOneOrMore{Inner: digit()}},
		{Name: TokStr, Priority: 0, Pattern: lexspec.Seq(
			lexspec.Literal("'"),
			lexspec.LexZeroOrMore{Inner: lexspec.AnyCharExcept{'\'', '\n'}},
			lexspec.Literal("'"),
		)},
		{Name: TokPlusEq, Priority: 0, Pattern: lexspec.Literal("+=")},
		{Name: TokEq, Priority: 0, Pattern: lexspec.Literal("=")},
		{Name: TokComma, Priority: 0, Pattern: lexspec.Literal(",")},
		{Name: TokSemicolon, Priority: 0, Pattern: lexspec.Literal(";")},
		{Name: TokOpPar, Priority: 0, Pattern: lexspec.Literal("(")},
		{Name: TokClPar, Priority: 0, Pattern: lexspec.Literal(")")},
		{Name: TokOpBra, Priority: 0, Pattern: lexspec.Literal("{")},
		{Name: TokClBra, Priority: 0, Pattern: lexspec.Literal("}")},
		{Name: TokSum, Priority: 0, Pattern: lexspec.Literal("+")},
		{Name: TokAnd, Priority: 0, Pattern: lexspec.Literal("&&")},
		{Name: TokMinorThan, Priority: 0, Pattern: lexspec.Literal("<")},
	}}
}
