// Package emit writes MyJS's three output artefacts — lexed.txt,
// symbols.txt, parse.txt — in their fixed byte formats.
//
// No teacher file writes these exact formats (they are MyJS-specific);
// grounded on tunascript/grammar.go's Production.String/Grammar.String,
// which build their fixed-shape debug output with direct fmt.Sprintf/
// strings.Builder calls rather than a templating library, generalized here
// to fmt.Fprintf against an io.Writer since these are written straight to
// files instead of returned as strings.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"myjsc/internal/semantics"
	"myjsc/internal/symtab"
	"myjsc/internal/token"
)

// Lexed writes one line per token as "<KIND,ATTR>".
func Lexed(w io.Writer, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(bw, "<%s,%s>\n", tok.Kind.DisplayName(), formatAttr(tok.Attr)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatAttr(a token.Attr) string {
	switch v := a.(type) {
	case token.None:
		return ""
	case token.Int:
		return fmt.Sprintf("%d", int64(v))
	case token.Float:
		return fmt.Sprintf("%v", float64(v))
	case token.Str:
		return fmt.Sprintf("'%s'", string(v))
	case token.Handle:
		return fmt.Sprintf("%d", uint32(v))
	default:
		return ""
	}
}

// Symbols writes the symbol-table dump, ordered by position.
func Symbols(w io.Writer, syms *symtab.Table) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "CONTENIDOS DE LA TABLA:\n\n"); err != nil {
		return err
	}
	for _, rec := range syms.ByPosition() {
		if _, err := fmt.Fprintf(bw, "* LEXEMA : '%s'\n  Atributos:\n", rec.Lexeme); err != nil {
			return err
		}
		if rec.HasType {
			if _, err := fmt.Fprintf(bw, "    + tipo: '%s'\n", typeDisplay(rec)); err != nil {
				return err
			}
		}
		if rec.HasDisp {
			if _, err := fmt.Fprintf(bw, "    + desplazamiento: %d\n", rec.Displacement); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "  --------- ---------\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func typeDisplay(rec *symtab.Record) string {
	if rec.KindHint == symtab.KindFunction {
		return semantics.SignatureDisplay(rec.Type.Signature)
	}
	return rec.Type.Tag
}

// Parse writes the left-most derivation as "Descendente p1 p2 ... \n", with
// the trailing space before the newline preserved.
func Parse(w io.Writer, derivation []int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "Descendente "); err != nil {
		return err
	}
	for _, n := range derivation {
		if _, err := fmt.Fprintf(bw, "%d ", n); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(bw, "\n"); err != nil {
		return err
	}
	return bw.Flush()
}
