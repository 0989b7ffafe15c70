package ll1

import (
	"fmt"
	"strings"

	"myjsc/internal/grammar"
)

// Table is the predictive parse table M[non-terminal, terminal] -> production.
type Table struct {
	cells map[tableKey]*grammar.Production
}

type tableKey struct {
	nt   grammar.Symbol
	term grammar.Symbol
}

// Lookup returns the production to expand for (nt, lookahead), or nil if the
// cell is empty (a syntactic error at that point).
func (t *Table) Lookup(nt, lookahead grammar.Symbol) *grammar.Production {
	return t.cells[tableKey{nt, lookahead}]
}

// Conflict describes two productions that both claim the same table cell.
type Conflict struct {
	NonTerminal grammar.Symbol
	Lookahead   grammar.Symbol
	First       *grammar.Production
	Second      *grammar.Production
}

func (c *Conflict) String() string {
	return fmt.Sprintf("M[%s, %s]: %q and %q both apply", c.NonTerminal, c.Lookahead, c.First, c.Second)
}

// NotLL1Error reports that a grammar failed to yield a conflict-free table.
type NotLL1Error struct {
	Conflicts []*Conflict
}

func (e *NotLL1Error) Error() string {
	lines := make([]string, 0, len(e.Conflicts)+1)
	lines = append(lines, fmt.Sprintf("grammar is not LL(1): %d conflict(s)", len(e.Conflicts)))
	for _, c := range e.Conflicts {
		lines = append(lines, "  "+c.String())
	}
	return strings.Join(lines, "\n")
}

// BuildTable constructs the predictive parse table. An explicit prediction
// (terminal directly in a production's FIRST) always wins; a nullable
// production reaching the same cell only via FOLLOW propagation is not a
// conflict and fills the cell only if no production claimed it. A collision
// between two productions that both explicitly claim a cell is fatal.
func BuildTable(g *grammar.Grammar, first *FirstSets, follow *FollowSets) (*Table, error) {
	t := &Table{cells: make(map[tableKey]*grammar.Production)}
	claimedBy := make(map[tableKey]*grammar.Production)
	var conflicts []*Conflict

	claim := func(nt, term grammar.Symbol, prod *grammar.Production) {
		key := tableKey{nt, term}
		if existing, ok := claimedBy[key]; ok {
			if existing.Number != prod.Number {
				conflicts = append(conflicts, &Conflict{NonTerminal: nt, Lookahead: term, First: existing, Second: prod})
			}
			return
		}
		claimedBy[key] = prod
		t.cells[key] = prod
	}

	for nt := range g.NonTerminals {
		for _, prod := range g.Alternatives(nt) {
			seqFirst, _ := first.firstOfSequence(prod.RHS)
			for _, term := range seqFirst {
				claim(nt, term, prod)
			}
		}
	}
	// Nullable alternatives fill, via FOLLOW, only the cells still empty.
	for nt := range g.NonTerminals {
		for _, prod := range g.Alternatives(nt) {
			if _, nullable := first.firstOfSequence(prod.RHS); !nullable {
				continue
			}
			for _, term := range follow.Get(nt) {
				key := tableKey{nt, term}
				if _, taken := t.cells[key]; !taken {
					t.cells[key] = prod
				}
			}
		}
	}

	if len(conflicts) > 0 {
		return nil, &NotLL1Error{Conflicts: conflicts}
	}
	return t, nil
}
