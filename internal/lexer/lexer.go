// Package lexer tokenizes MyJS source with a single compiled DFA, doing
// longest-match scanning. Grounded on tunascript/lexer.go's scanning loop
// (mode-based, matchRule-driven dispatch over the input) and
// ictiobus/lex/lazy.go's lazyLex.Next, extended with: literal bound checks
// (range violations are lexical errors that drop the token), reserved-word
// reclassification of scanned identifiers, and symbol-table interning.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"myjsc/internal/automata"
	"myjsc/internal/myjslang"
	"myjsc/internal/report"
	"myjsc/internal/symtab"
	"myjsc/internal/token"
)

// Numeric and string literal bounds.
const (
	MaxInt      = 32767
	MaxFloat    = 117549436.0
	MaxStrBytes = 64
)

// Lexer scans a fixed source string into a token stream.
type Lexer struct {
	dfa    automata.DFA
	syms   *symtab.Table
	errs   *report.ErrorList
	source string
	offset int
	line   uint32
}

// New creates a Lexer over source, interning identifiers into syms and
// reporting lexical errors into errs.
func New(source string, syms *symtab.Table, errs *report.ErrorList) *Lexer {
	return &Lexer{
		dfa:    automata.CompileLexicalGrammar(myjslang.Grammar()),
		syms:   syms,
		errs:   errs,
		source: source,
		line:   1,
	}
}

// Tokenize scans the entire source and returns the token stream terminated
// by an explicit eof token. Tokens that fail a bound check are dropped (not
// appended) but still recorded as lexical errors.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		l.skipWhitespace()
		if l.offset >= len(l.source) {
			break
		}
		tok, ok := l.nextToken()
		if ok {
			toks = append(toks, tok)
		}
	}
	toks = append(toks, token.Token{Kind: token.KindEOF, Attr: token.None{}, Line: l.line})
	return toks
}

func (l *Lexer) skipWhitespace() {
	for l.offset < len(l.source) {
		r, size := utf8.DecodeRuneInString(l.source[l.offset:])
		switch r {
		case ' ', '\t', '\r':
			l.offset += size
		case '\n':
			l.offset += size
			l.line++
		default:
			return
		}
	}
}

func (l *Lexer) nextToken() (token.Token, bool) {
	startOffset := l.offset
	startLine := l.line

	state := l.dfa.InitialState
	lastAcceptOffset := -1
	lastAcceptLine := l.line
	var lastAcceptName string

	offset := l.offset
	line := l.line
	for offset < len(l.source) {
		r, size := utf8.DecodeRuneInString(l.source[offset:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		next := l.dfa.NextState(state, r)
		if next == "" {
			break
		}
		state = next
		offset += size
		if r == '\n' {
			line++
		}
		if l.dfa.IsAccepting(state) {
			lastAcceptOffset = offset
			lastAcceptLine = line
			lastAcceptName = l.dfa.TokenName(state)
		}
	}

	if lastAcceptOffset < 0 {
		r, size := utf8.DecodeRuneInString(l.source[startOffset:])
		l.errs.Add(report.PhaseLexical, startLine, "unexpected character %q", r)
		if size == 0 {
			size = 1
		}
		l.offset = startOffset + size
		return token.Token{}, false
	}

	lexeme := l.source[startOffset:lastAcceptOffset]
	l.offset = lastAcceptOffset
	l.line = lastAcceptLine

	return l.classify(lastAcceptName, lexeme, startLine)
}

func (l *Lexer) classify(tokenName, lexeme string, line uint32) (token.Token, bool) {
	switch tokenName {
	case myjslang.TokID:
		if kind, ok := token.ReservedWord(lexeme); ok {
			return token.Token{Kind: kind, Attr: token.None{}, Line: line}, true
		}
		rec := l.syms.Intern(lexeme, symtab.KindUnknown)
		return token.Token{Kind: token.KindID, Attr: token.Handle(rec.Position), Line: line}, true

	case myjslang.TokIntConst:
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil || n > MaxInt {
			l.errs.Add(report.PhaseLexical, line, "Entero fuera de rango: %s", lexeme)
			return token.Token{}, false
		}
		return token.Token{Kind: token.KindIntConst, Attr: token.Int(n), Line: line}, true

	case myjslang.TokFloatConst:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil || f > MaxFloat {
			l.errs.Add(report.PhaseLexical, line, "float literal %s exceeds maximum value %v", lexeme, MaxFloat)
			return token.Token{}, false
		}
		return token.Token{Kind: token.KindRealConst, Attr: token.Float(f), Line: line}, true

	case myjslang.TokStr:
		content := lexeme
		if len(content) >= 2 {
			content = content[1 : len(content)-1]
		}
		if len(content) > MaxStrBytes {
			l.errs.Add(report.PhaseLexical, line, "string literal exceeds maximum length %d bytes", MaxStrBytes)
			return token.Token{}, false
		}
		return token.Token{Kind: token.KindStr, Attr: token.Str(content), Line: line}, true

	case myjslang.TokPlusEq:
		return token.Token{Kind: token.KindPlusEq, Attr: token.None{}, Line: line}, true
	case myjslang.TokEq:
		return token.Token{Kind: token.KindEq, Attr: token.None{}, Line: line}, true
	case myjslang.TokComma:
		return token.Token{Kind: token.KindComma, Attr: token.None{}, Line: line}, true
	case myjslang.TokSemicolon:
		return token.Token{Kind: token.KindSemicolon, Attr: token.None{}, Line: line}, true
	case myjslang.TokOpPar:
		return token.Token{Kind: token.KindOpPar, Attr: token.None{}, Line: line}, true
	case myjslang.TokClPar:
		return token.Token{Kind: token.KindClPar, Attr: token.None{}, Line: line}, true
	case myjslang.TokOpBra:
		return token.Token{Kind: token.KindOpBra, Attr: token.None{}, Line: line}, true
	case myjslang.TokClBra:
		return token.Token{Kind: token.KindClBra, Attr: token.None{}, Line: line}, true
	case myjslang.TokSum:
		return token.Token{Kind: token.KindSum, Attr: token.None{}, Line: line}, true
	case myjslang.TokAnd:
		return token.Token{Kind: token.KindAnd, Attr: token.None{}, Line: line}, true
	case myjslang.TokMinorThan:
		return token.Token{Kind: token.KindMinorThan, Attr: token.None{}, Line: line}, true
	default:
		l.errs.Add(report.PhaseLexical, line, "internal: unrecognized token name %q", tokenName)
		return token.Token{}, false
	}
}
