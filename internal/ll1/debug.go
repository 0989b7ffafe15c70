package ll1

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"myjsc/internal/grammar"
)

// PrintFirstSets writes every FIRST(X) in sorted, human-readable form. No
// command in this repository calls it; it is a maintainer aid.
func PrintFirstSets(fs *FirstSets, out io.Writer) {
	fmt.Fprintln(out, "FIRST SETS:")
	symbols := sortedSymbols(fs.sets)
	for _, sym := range symbols {
		terms := symbolStrings(fs.Get(sym))
		nullable := ""
		if fs.IsNullable(sym) {
			nullable = " [nullable]"
		}
		fmt.Fprintf(out, "  FIRST(%s) = {%s}%s\n", sym, strings.Join(terms, ", "), nullable)
	}
}

// PrintFollowSets writes every FOLLOW(A) in sorted, human-readable form.
func PrintFollowSets(fo *FollowSets, out io.Writer) {
	fmt.Fprintln(out, "FOLLOW SETS:")
	symbols := sortedSymbols(fo.sets)
	for _, sym := range symbols {
		terms := symbolStrings(fo.Get(sym))
		fmt.Fprintf(out, "  FOLLOW(%s) = {%s}\n", sym, strings.Join(terms, ", "))
	}
}

// PrintTable writes the parse table one line per populated cell, sorted by
// non-terminal then terminal, showing the chosen production's number and text.
func PrintTable(g *grammar.Grammar, t *Table, out io.Writer) {
	fmt.Fprintln(out, "LL(1) PARSE TABLE:")

	var nts []string
	for nt := range g.NonTerminals {
		nts = append(nts, string(nt))
	}
	sort.Strings(nts)

	terms := make([]string, 0, len(g.Terminals)+1)
	for term := range g.Terminals {
		terms = append(terms, string(term))
	}
	terms = append(terms, string(grammar.EOF))
	sort.Strings(terms)

	for _, nt := range nts {
		for _, term := range terms {
			if prod := t.Lookup(grammar.Symbol(nt), grammar.Symbol(term)); prod != nil {
				fmt.Fprintf(out, "  M[%s, %s] = %d: %s\n", nt, term, prod.Number, prod)
			}
		}
	}
}

func sortedSymbols(m map[grammar.Symbol]*symbolSet) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func symbolStrings(syms []grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}
