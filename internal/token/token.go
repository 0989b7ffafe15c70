// Package token defines the lexical token vocabulary shared by the lexer,
// the grammar loader and the predictive analyzer.
//
// A Kind is the Go-level classification of a token; Terminal returns the
// grammar-file spelling the same token is known by once it reaches the
// LL(1) machinery (spec §6's token-kind to grammar-terminal map).
package token

import "fmt"

// Kind classifies a token.
type Kind int

const (
	KindBoolean Kind = iota
	KindElse
	KindFloat
	KindFunction
	KindIf
	KindInt
	KindLet
	KindRead
	KindReturn
	KindString
	KindVoid
	KindWrite
	KindFalse
	KindTrue
	KindRealConst
	KindIntConst
	KindStr
	KindPlusEq
	KindEq
	KindComma
	KindSemicolon
	KindOpPar
	KindClPar
	KindOpBra
	KindClBra
	KindSum
	KindAnd
	KindMinorThan
	KindEOF
	KindID
)

var terminalNames = map[Kind]string{
	KindBoolean:   "boolean",
	KindElse:      "else",
	KindFloat:     "float",
	KindFunction:  "function",
	KindIf:        "if",
	KindInt:       "int",
	KindLet:       "let",
	KindRead:      "read",
	KindReturn:    "return",
	KindString:    "string",
	KindVoid:      "void",
	KindWrite:     "write",
	KindFalse:     "false",
	KindTrue:      "true",
	KindRealConst: "floatconst",
	KindIntConst:  "intconst",
	KindStr:       "str",
	KindPlusEq:    "pluseq",
	KindEq:        "eq",
	KindComma:     "comma",
	KindSemicolon: "semicolon",
	KindOpPar:     "oppar",
	KindClPar:     "clpar",
	KindOpBra:     "opbra",
	KindClBra:     "clbra",
	KindSum:       "sum",
	KindAnd:       "and",
	KindMinorThan: "minorthan",
	KindEOF:       "eof",
	KindID:        "id",
}

// reservedWords maps MyJS source spellings to their keyword kind. Consulted
// by the lexer after maximal-munch identifier scanning.
var reservedWords = map[string]Kind{
	"boolean":  KindBoolean,
	"else":     KindElse,
	"float":    KindFloat,
	"function": KindFunction,
	"if":       KindIf,
	"int":      KindInt,
	"let":      KindLet,
	"read":     KindRead,
	"return":   KindReturn,
	"string":   KindString,
	"void":     KindVoid,
	"write":    KindWrite,
	"false":    KindFalse,
	"true":     KindTrue,
}

// ReservedWord looks up a scanned identifier lexeme as a reserved word.
// Returns the keyword kind and true, or the zero Kind and false.
func ReservedWord(lexeme string) (Kind, bool) {
	k, ok := reservedWords[lexeme]
	return k, ok
}

// Terminal returns the grammar-file terminal name for a token kind.
func (k Kind) Terminal() string {
	if name, ok := terminalNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var displayNames = map[Kind]string{
	KindBoolean: "BOOLEAN", KindElse: "ELSE", KindFloat: "FLOAT",
	KindFunction: "FUNCTION", KindIf: "IF", KindInt: "INT", KindLet: "LET",
	KindRead: "READ", KindReturn: "RETURN", KindString: "STRING",
	KindVoid: "VOID", KindWrite: "WRITE", KindFalse: "FALSE", KindTrue: "TRUE",
	KindRealConst: "REALCONST", KindIntConst: "INTCONST", KindStr: "STR",
	KindPlusEq: "PLUSEQ", KindEq: "EQ", KindComma: "COMMA",
	KindSemicolon: "SEMICOLON", KindOpPar: "OPPAR", KindClPar: "CLPAR",
	KindOpBra: "OPBRA", KindClBra: "CLBRA", KindSum: "SUM", KindAnd: "AND",
	KindMinorThan: "MINORTHAN", KindEOF: "EOF", KindID: "ID",
}

// DisplayName returns the upper-case kind name lexed.txt prints, the
// left-hand side of the token-kind/grammar-terminal map.
func (k Kind) DisplayName() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

func (k Kind) String() string { return k.Terminal() }

// noAttrKinds have no attribute payload and print as "<KIND,>" (spec §6).
var noAttrKinds = map[Kind]bool{
	KindBoolean: true, KindElse: true, KindFloat: true, KindFunction: true,
	KindIf: true, KindInt: true, KindLet: true, KindRead: true,
	KindReturn: true, KindString: true, KindVoid: true, KindWrite: true,
	KindFalse: true, KindTrue: true, KindPlusEq: true, KindEq: true,
	KindComma: true, KindSemicolon: true, KindOpPar: true, KindClPar: true,
	KindOpBra: true, KindClBra: true, KindSum: true, KindAnd: true,
	KindMinorThan: true, KindEOF: true,
}

// HasAttr reports whether tokens of this kind carry an attribute value.
func (k Kind) HasAttr() bool { return !noAttrKinds[k] }

// Attr is the payload carried by a token: None, Int, Float, Str or Handle.
type Attr interface {
	isAttr()
}

// None is the attribute of tokens that carry no value.
type None struct{}

func (None) isAttr() {}

// Int is the attribute of an intconst token.
type Int int64

func (Int) isAttr() {}

// Float is the attribute of a floatconst token.
type Float float64

func (Float) isAttr() {}

// Str is the attribute of a str token. Bounded to 64 bytes by the lexer.
type Str string

func (Str) isAttr() {}

// Handle is the attribute of an id token: the symbol table position
// assigned when the identifier was interned.
type Handle uint32

func (Handle) isAttr() {}

// Token is one element of the token stream produced by the lexer.
type Token struct {
	Kind Kind
	Attr Attr
	Line uint32
}

func (t Token) String() string {
	return fmt.Sprintf("<%s,%v>@%d", t.Kind.Terminal(), t.Attr, t.Line)
}
