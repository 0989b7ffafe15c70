package automata

import (
	"fmt"
	"sort"
	"strings"
)

// DFA is a deterministic automaton whose accepting states additionally
// record which token they recognize and at what priority (for breaking ties
// between same-length matches, e.g. a keyword literal over a generic
// identifier pattern).
type DFA struct {
	InitialState    string
	States          map[string]DFAState
	AcceptingStates map[string]AcceptInfo
}

// DFAState is one DFA state: a deterministic transition per rune.
type DFAState struct {
	Name        string
	Transitions map[rune]string
}

// NextState returns the state reached from current on input, or "" if there
// is no such transition (a dead end).
func (d *DFA) NextState(current string, input rune) string {
	state, ok := d.States[current]
	if !ok {
		return ""
	}
	return state.Transitions[input]
}

// IsAccepting reports whether state is an accepting state.
func (d *DFA) IsAccepting(state string) bool {
	_, ok := d.AcceptingStates[state]
	return ok
}

// TokenName returns the name of the token an accepting state recognizes.
func (d *DFA) TokenName(state string) string {
	return d.AcceptingStates[state].TokenName
}

// NFAToDFA performs subset construction, carrying token/priority
// information from NFA accept states into the resulting DFA's accepting
// states (highest priority among coincident NFA accept states wins).
func NFAToDFA(nfa *NFA) DFA {
	startClosure := epsilonClosure(nfa, map[int]bool{nfa.Start: true})

	dfa := DFA{
		InitialState:    stateSetKey(startClosure),
		States:          make(map[string]DFAState),
		AcceptingStates: make(map[string]AcceptInfo),
	}

	queue := []map[int]bool{startClosure}
	seen := map[string]bool{dfa.InitialState: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentName := stateSetKey(current)

		var best AcceptInfo
		accepting := false
		for id := range current {
			if info, ok := nfa.AcceptStates[id]; ok {
				if !accepting || info.Priority > best.Priority {
					best = info
					accepting = true
				}
			}
		}
		if accepting {
			dfa.AcceptingStates[currentName] = best
		}

		byRune := make(map[rune]map[int]bool)
		for id := range current {
			for r, targets := range nfa.States[id].Transitions {
				if byRune[r] == nil {
					byRune[r] = make(map[int]bool)
				}
				for t := range targets {
					byRune[r][t] = true
				}
			}
		}

		transitions := make(map[rune]string, len(byRune))
		for r, targets := range byRune {
			closure := epsilonClosure(nfa, targets)
			name := stateSetKey(closure)
			transitions[r] = name
			if !seen[name] {
				seen[name] = true
				queue = append(queue, closure)
			}
		}
		dfa.States[currentName] = DFAState{Name: currentName, Transitions: transitions}
	}

	return dfa
}

func epsilonClosure(nfa *NFA, states map[int]bool) map[int]bool {
	closure := make(map[int]bool, len(states))
	stack := make([]int, 0, len(states))
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range nfa.States[cur].Epsilon {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}
	return closure
}

func stateSetKey(states map[int]bool) string {
	if len(states) == 0 {
		return "{}"
	}
	ids := make([]int, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
