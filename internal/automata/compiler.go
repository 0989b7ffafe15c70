package automata

import "myjsc/internal/lexspec"

// CompilePattern converts a lexspec.Pattern into an NFA fragment via
// Thompson's construction.
func CompilePattern(pattern lexspec.Pattern) *NFA {
	switch p := pattern.(type) {
	case lexspec.Literal:
		return nfaFromLiteral(p)
	case lexspec.CharRange:
		return nfaFromCharRange(p)
	case lexspec.CharSet:
		return nfaFromCharSet(p)
	case lexspec.AnyChar:
		return nfaFromAnyChar()
	case lexspec.AnyCharExcept:
		return nfaFromAnyCharExcept(p)
	case lexspec.LexSequence:
		return nfaFromSequence(p)
	case lexspec.LexAlternative:
		return nfaFromAlternative(p)
	case lexspec.LexOptional:
		return nfaFromOptional(p)
	case lexspec.LexZeroOrMore:
		return nfaFromZeroOrMore(p)
	case lexspec.LexOneOrMore:
		return nfaFromOneOrMore(p)
	default:
		panic("automata: unknown lexical pattern type")
	}
}

func nfaFromLiteral(lit lexspec.Literal) *NFA {
	str := string(lit)
	nfa := NewNFA()
	if len(str) == 0 {
		nfa.AddEpsilonTransition(nfa.Start, nfa.Accept)
		return nfa
	}
	current := nfa.Start
	runes := []rune(str)
	for i, r := range runes {
		if i == len(runes)-1 {
			nfa.AddTransition(current, r, nfa.Accept)
		} else {
			next := nfa.AddState()
			nfa.AddTransition(current, r, next)
			current = next
		}
	}
	return nfa
}

func nfaFromCharRange(cr lexspec.CharRange) *NFA {
	nfa := NewNFA()
	for r := cr.From; r <= cr.To; r++ {
		nfa.AddTransition(nfa.Start, r, nfa.Accept)
	}
	return nfa
}

func nfaFromCharSet(cs lexspec.CharSet) *NFA {
	nfa := NewNFA()
	for _, r := range cs {
		nfa.AddTransition(nfa.Start, r, nfa.Accept)
	}
	return nfa
}

// maxASCII bounds the any-char/any-char-except fragments: MyJS source is
// ASCII, so there is no need to enumerate the Unicode range.
const maxASCII = rune(127)

func nfaFromAnyChar() *NFA {
	nfa := NewNFA()
	for r := rune(0); r <= maxASCII; r++ {
		nfa.AddTransition(nfa.Start, r, nfa.Accept)
	}
	return nfa
}

func nfaFromAnyCharExcept(ace lexspec.AnyCharExcept) *NFA {
	excluded := make(map[rune]bool, len(ace))
	for _, r := range ace {
		excluded[r] = true
	}
	nfa := NewNFA()
	for r := rune(0); r <= maxASCII; r++ {
		if !excluded[r] {
			nfa.AddTransition(nfa.Start, r, nfa.Accept)
		}
	}
	return nfa
}

func nfaFromSequence(seq lexspec.LexSequence) *NFA {
	if len(seq) == 0 {
		nfa := NewNFA()
		nfa.AddEpsilonTransition(nfa.Start, nfa.Accept)
		return nfa
	}
	result := CompilePattern(seq[0])
	for _, pattern := range seq[1:] {
		next := CompilePattern(pattern)
		offset := len(result.States)
		next.RenumberStates(offset)
		for id, state := range next.States {
			result.States[id] = state
		}
		result.AddEpsilonTransition(result.Accept, next.Start)
		result.Accept = next.Accept
	}
	return result
}

func nfaFromAlternative(alt lexspec.LexAlternative) *NFA {
	nfa := NewNFA()
	if len(alt) == 0 {
		nfa.AddEpsilonTransition(nfa.Start, nfa.Accept)
		return nfa
	}
	for _, pattern := range alt {
		frag := CompilePattern(pattern)
		offset := len(nfa.States)
		frag.RenumberStates(offset)
		for id, state := range frag.States {
			nfa.States[id] = state
		}
		nfa.AddEpsilonTransition(nfa.Start, frag.Start)
		nfa.AddEpsilonTransition(frag.Accept, nfa.Accept)
	}
	return nfa
}

func nfaFromOptional(opt lexspec.LexOptional) *NFA {
	inner := CompilePattern(opt.Inner)
	nfa := NewNFA()
	offset := len(nfa.States)
	inner.RenumberStates(offset)
	for id, state := range inner.States {
		nfa.States[id] = state
	}
	nfa.AddEpsilonTransition(nfa.Start, inner.Start)
	nfa.AddEpsilonTransition(inner.Accept, nfa.Accept)
	nfa.AddEpsilonTransition(nfa.Start, nfa.Accept)
	return nfa
}

func nfaFromZeroOrMore(zom lexspec.LexZeroOrMore) *NFA {
	inner := CompilePattern(zom.Inner)
	nfa := NewNFA()
	offset := len(nfa.States)
	inner.RenumberStates(offset)
	for id, state := range inner.States {
		nfa.States[id] = state
	}
	nfa.AddEpsilonTransition(nfa.Start, inner.Start)
	nfa.AddEpsilonTransition(inner.Accept, nfa.Accept)
	nfa.AddEpsilonTransition(nfa.Start, nfa.Accept)
	nfa.AddEpsilonTransition(inner.Accept, inner.Start)
	return nfa
}

func nfaFromOneOrMore(oom lexspec.LexOneOrMore) *NFA {
	inner := CompilePattern(oom.Inner)
	nfa := NewNFA()
	offset := len(nfa.States)
	inner.RenumberStates(offset)
	for id, state := range inner.States {
		nfa.States[id] = state
	}
	nfa.AddEpsilonTransition(nfa.Start, inner.Start)
	nfa.AddEpsilonTransition(inner.Accept, nfa.Accept)
	nfa.AddEpsilonTransition(inner.Accept, inner.Start)
	return nfa
}

// CompileLexicalGrammar compiles every token definition to an NFA fragment,
// combines them with alternation, and subset-constructs the result into a
// single DFA that recognizes the longest match across all token kinds at
// once.
func CompileLexicalGrammar(g lexspec.LexicalGrammar) DFA {
	if len(g.Tokens) == 0 {
		return DFA{InitialState: "start", States: map[string]DFAState{}, AcceptingStates: map[string]AcceptInfo{}}
	}
	nfas := make([]*NFA, 0, len(g.Tokens))
	for _, def := range g.Tokens {
		nfa := CompilePattern(def.Pattern)
		nfa.AcceptStates[nfa.Accept] = AcceptInfo{TokenName: def.Name, Priority: def.Priority}
		nfas = append(nfas, nfa)
	}
	combined := combineNFAs(nfas)
	return NFAToDFA(combined)
}

func combineNFAs(nfas []*NFA) *NFA {
	result := NewNFA()
	offset := len(result.States)
	for _, nfa := range nfas {
		frag := nfa.Copy()
		frag.RenumberStates(offset)
		for id, state := range frag.States {
			result.States[id] = state
		}
		for id, info := range frag.AcceptStates {
			result.AcceptStates[id] = info
		}
		result.AddEpsilonTransition(result.Start, frag.Start)
		offset = len(result.States)
	}
	return result
}
