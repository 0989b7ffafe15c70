// Package ll1 computes FIRST/FOLLOW sets and builds the predictive parse
// table M[non-terminal, terminal] -> production over a flat grammar.Grammar.
//
// Grounded on tunascript/grammar.go's FIRST/FOLLOW/LLParseTable methods (the
// same fixed-point worklist computation over a Grammar's rules), and on
// npillmayer-gorgo/lr/tables.go's use of gods/sets/treeset and
// gods/lists/arraylist for ordered, deduplicated symbol-set bookkeeping.
package ll1

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"myjsc/internal/grammar"
)

type symbolSet = treeset.Set

func newSymbolSet() *symbolSet {
	return treeset.NewWith(utils.StringComparator)
}

// FirstSets holds FIRST(X) for every terminal and non-terminal in a grammar,
// plus which non-terminals are nullable (can derive lambda).
type FirstSets struct {
	sets     map[grammar.Symbol]*treeset.Set
	nullable map[grammar.Symbol]bool
}

// Get returns the FIRST set for a symbol, as a sorted slice of terminal names.
func (fs *FirstSets) Get(sym grammar.Symbol) []grammar.Symbol {
	set, ok := fs.sets[sym]
	if !ok {
		return nil
	}
	return toSymbols(set)
}

// IsNullable reports whether a non-terminal can derive the empty string.
func (fs *FirstSets) IsNullable(sym grammar.Symbol) bool { return fs.nullable[sym] }

func toSymbols(set *treeset.Set) []grammar.Symbol {
	vals := set.Values()
	out := make([]grammar.Symbol, len(vals))
	for i, v := range vals {
		out[i] = grammar.Symbol(v.(string))
	}
	return out
}

// ComputeFirst computes FIRST sets for every terminal and non-terminal in g
// by iterating productions to a fixed point.
func ComputeFirst(g *grammar.Grammar) *FirstSets {
	fs := &FirstSets{
		sets:     make(map[grammar.Symbol]*treeset.Set),
		nullable: make(map[grammar.Symbol]bool),
	}

	for t := range g.Terminals {
		s := newSymbolSet()
		s.Add(string(t))
		fs.sets[t] = s
	}
	eofSet := newSymbolSet()
	eofSet.Add(string(grammar.EOF))
	fs.sets[grammar.EOF] = eofSet

	for nt := range g.NonTerminals {
		fs.sets[nt] = newSymbolSet()
	}

	changed := true
	for changed {
		changed = false
		for nt := range g.NonTerminals {
			for _, prod := range g.Alternatives(nt) {
				seqFirst, seqNullable := fs.firstOfSequence(prod.RHS)
				before := fs.sets[nt].Size()
				fs.sets[nt].Add(toInterfaces(seqFirst)...)
				if fs.sets[nt].Size() != before {
					changed = true
				}
				if seqNullable && !fs.nullable[nt] {
					fs.nullable[nt] = true
					changed = true
				}
			}
		}
	}
	return fs
}

func toInterfaces(syms []grammar.Symbol) []interface{} {
	out := make([]interface{}, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}

// firstOfSequence computes FIRST(X1 X2 ... Xn) and whether the whole
// sequence is nullable. A lambda-only RHS is nullable with an empty FIRST.
func (fs *FirstSets) firstOfSequence(seq []grammar.Symbol) ([]grammar.Symbol, bool) {
	if len(seq) == 1 && seq[0] == grammar.Lambda {
		return nil, true
	}
	result := newSymbolSet()
	nullable := true
	for _, sym := range seq {
		set, ok := fs.sets[sym]
		if ok {
			result.Add(set.Values()...)
		}
		if !fs.symbolNullable(sym) {
			nullable = false
			break
		}
	}
	return toSymbols(result), nullable
}

func (fs *FirstSets) symbolNullable(sym grammar.Symbol) bool {
	if sym == grammar.Lambda {
		return true
	}
	return fs.nullable[sym]
}
