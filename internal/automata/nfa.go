// Package automata compiles internal/lexspec patterns into an NFA via
// Thompson's construction, then the NFA into a DFA via subset construction.
//
// Grounded on ictiobus/automaton/nfa.go's NFA[E].ToDFA (subset construction
// over epsilon-closures) and ictiobus/lex/regex.go's Thompson-style fragment
// builders (createSingleSymbolFA, createJuxtapositionFA, createKleeneStarFA,
// createAlternationFA), generalized from a regex string to an arbitrary
// lexspec.LexicalGrammar of Pattern trees.
package automata

// NFA is a non-deterministic finite automaton: it may have multiple
// transitions on the same rune, plus epsilon transitions.
type NFA struct {
	Start  int
	Accept int
	States map[int]*NFAState
	// AcceptStates maps a state ID to the token it accepts, for states that
	// are a Thompson-fragment's own accept state (before fragments are
	// combined by alternation).
	AcceptStates map[int]AcceptInfo
}

// NFAState is one state in an NFA.
type NFAState struct {
	ID          int
	Transitions map[rune]map[int]bool
	Epsilon     map[int]bool
}

// AcceptInfo names which token an accepting state recognizes.
type AcceptInfo struct {
	TokenName string
	Priority  int
}

// NewNFA creates an NFA with just a start and accept state, unconnected.
func NewNFA() *NFA {
	nfa := &NFA{
		Start:        0,
		Accept:       1,
		States:       make(map[int]*NFAState),
		AcceptStates: make(map[int]AcceptInfo),
	}
	nfa.States[0] = newState(0)
	nfa.States[1] = newState(1)
	return nfa
}

func newState(id int) *NFAState {
	return &NFAState{ID: id, Transitions: make(map[rune]map[int]bool), Epsilon: make(map[int]bool)}
}

// AddState adds a fresh state and returns its ID.
func (nfa *NFA) AddState() int {
	id := len(nfa.States)
	nfa.States[id] = newState(id)
	return id
}

// AddTransition adds an edge from -> to consuming input.
func (nfa *NFA) AddTransition(from int, input rune, to int) {
	if nfa.States[from].Transitions[input] == nil {
		nfa.States[from].Transitions[input] = make(map[int]bool)
	}
	nfa.States[from].Transitions[input][to] = true
}

// AddEpsilonTransition adds an edge from -> to consuming no input.
func (nfa *NFA) AddEpsilonTransition(from, to int) {
	nfa.States[from].Epsilon[to] = true
}

// RenumberStates shifts every state ID by offset, returning the new
// start/accept IDs. Used when splicing one NFA fragment into another.
func (nfa *NFA) RenumberStates(offset int) (newStart, newAccept int) {
	mapping := make(map[int]int, len(nfa.States))
	for oldID := range nfa.States {
		mapping[oldID] = oldID + offset
	}

	newStates := make(map[int]*NFAState, len(nfa.States))
	for oldID, state := range nfa.States {
		newID := mapping[oldID]
		ns := newState(newID)
		for r, targets := range state.Transitions {
			ns.Transitions[r] = make(map[int]bool, len(targets))
			for t := range targets {
				ns.Transitions[r][mapping[t]] = true
			}
		}
		for t := range state.Epsilon {
			ns.Epsilon[mapping[t]] = true
		}
		newStates[newID] = ns
	}
	nfa.States = newStates
	nfa.Start = mapping[nfa.Start]
	nfa.Accept = mapping[nfa.Accept]

	newAccepts := make(map[int]AcceptInfo, len(nfa.AcceptStates))
	for oldID, info := range nfa.AcceptStates {
		newAccepts[mapping[oldID]] = info
	}
	nfa.AcceptStates = newAccepts

	return nfa.Start, nfa.Accept
}

// Copy returns a deep copy of the NFA.
func (nfa *NFA) Copy() *NFA {
	out := &NFA{
		Start:        nfa.Start,
		Accept:       nfa.Accept,
		States:       make(map[int]*NFAState, len(nfa.States)),
		AcceptStates: make(map[int]AcceptInfo, len(nfa.AcceptStates)),
	}
	for id, state := range nfa.States {
		ns := newState(state.ID)
		for r, targets := range state.Transitions {
			ns.Transitions[r] = make(map[int]bool, len(targets))
			for t := range targets {
				ns.Transitions[r][t] = true
			}
		}
		for t := range state.Epsilon {
			ns.Epsilon[t] = true
		}
		out.States[id] = ns
	}
	for id, info := range nfa.AcceptStates {
		out.AcceptStates[id] = info
	}
	return out
}
