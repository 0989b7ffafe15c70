package ll1

import (
	"myjsc/internal/grammar"
)

// FollowSets holds FOLLOW(A) for every non-terminal A in a grammar.
type FollowSets struct {
	sets map[grammar.Symbol]*symbolSet
}

// Get returns the FOLLOW set for a non-terminal, as a sorted slice.
func (fo *FollowSets) Get(nt grammar.Symbol) []grammar.Symbol {
	set, ok := fo.sets[nt]
	if !ok {
		return nil
	}
	return toSymbols(set)
}

// ComputeFollow computes FOLLOW sets for every non-terminal in g. Requires
// first to already be computed over the same grammar.
func ComputeFollow(g *grammar.Grammar, first *FirstSets) *FollowSets {
	fo := &FollowSets{sets: make(map[grammar.Symbol]*symbolSet)}
	for nt := range g.NonTerminals {
		fo.sets[nt] = newSymbolSet()
	}
	fo.sets[g.Axiom].Add(string(grammar.EOF))

	changed := true
	for changed {
		changed = false
		for nt := range g.NonTerminals {
			for _, prod := range g.Alternatives(nt) {
				if prod.IsLambda() {
					continue
				}
				for i, sym := range prod.RHS {
					if !g.IsNonTerminal(sym) {
						continue
					}
					rest := prod.RHS[i+1:]
					restFirst, restNullable := first.firstOfSequence(rest)
					if len(rest) == 0 {
						restNullable = true
					}
					before := fo.sets[sym].Size()
					fo.sets[sym].Add(toInterfaces(restFirst)...)
					if restNullable {
						fo.sets[sym].Add(fo.sets[nt].Values()...)
					}
					if fo.sets[sym].Size() != before {
						changed = true
					}
				}
			}
		}
	}
	return fo
}
