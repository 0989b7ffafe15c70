// Package lexspec is a small pattern algebra for describing a token's
// lexical shape — literal strings, character ranges/sets, sequencing,
// alternation and repetition — compiled to an NFA/DFA by internal/automata.
//
// Grounded on tunascript/lexer.go's regularModeMatchRules table (a declarative
// []matchRule literal/class/lexeme description of each token), kept as a
// standalone package since MyJS's lexical grammar (internal/myjslang) and
// syntactic grammar (internal/grammar) are loaded from entirely different
// sources: the former is built in Go, the latter from a text file.
package lexspec

// Pattern is implemented by every lexical pattern node. It is a closed,
// marker-interface-style sum type: automata.CompilePattern switches on the
// concrete type.
type Pattern interface {
	isPattern()
}

// Literal matches an exact string, one rune at a time.
type Literal string

func (Literal) isPattern() {}

// CharRange matches any single rune in [From, To].
type CharRange struct {
	From, To rune
}

func (CharRange) isPattern() {}

// CharSet matches any single rune present in the set.
type CharSet []rune

func (CharSet) isPattern() {}

// AnyChar matches any single rune.
type AnyChar struct{}

func (AnyChar) isPattern() {}

// AnyCharExcept matches any single rune not present in the set.
type AnyCharExcept []rune

func (AnyCharExcept) isPattern() {}

// LexSequence matches each element in order.
type LexSequence []Pattern

func (LexSequence) isPattern() {}

// LexAlternative matches any one of its elements.
type LexAlternative []Pattern

func (LexAlternative) isPattern() {}

// LexOptional matches its inner pattern zero or one times.
type LexOptional struct{ Inner Pattern }

func (LexOptional) isPattern() {}

// LexZeroOrMore matches its inner pattern zero or more times.
type LexZeroOrMore struct{ Inner Pattern }

func (LexZeroOrMore) isPattern() {}

// LexOneOrMore matches its inner pattern one or more times.
type LexOneOrMore struct{ Inner Pattern }

func (LexOneOrMore) isPattern() {}

// Seq is a convenience constructor for LexSequence.
func Seq(patterns ...Pattern) LexSequence { return LexSequence(patterns) }

// Alt is a convenience constructor for LexAlternative.
func Alt(patterns ...Pattern) LexAlternative { return LexAlternative(patterns) }

// TokenDefinition associates a named token with the pattern that recognizes
// it and a priority used to break same-length-match ties (higher wins).
type TokenDefinition struct {
	Name     string
	Pattern  Pattern
	Priority int
}

// LexicalGrammar is an ordered set of token definitions, compiled as one
// combined automaton so the lexer can find the longest match across all of
// them in a single pass.
type LexicalGrammar struct {
	Tokens []TokenDefinition
}
