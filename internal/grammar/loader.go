package grammar

import (
	"fmt"
	"os"
	"strings"
)

// LoadError is a structural, fatal error raised while loading a grammar
// file: missing section, malformed production or unknown symbol. LL(1) table
// collisions are reported separately, by ll1.BuildTable as ll1.NotLL1Error.
type LoadError struct {
	Path   string
	Reason string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("grammar %q: %s", e.Path, e.Reason)
	}
	return "grammar: " + e.Reason
}

// Load reads and parses a grammar file in the fixed section format:
//
//	//// comment
//	Terminales = { a, b, c }
//	NoTerminales = { A, B, C }
//	Axioma = A
//	Producciones = {
//	  A -> B C
//	  A -> lambda
//	}
func Load(path string) (*Grammar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: err.Error()}
	}
	toks, err := tokenize(string(raw))
	if err != nil {
		return nil, &LoadError{Path: path, Reason: err.Error()}
	}
	return parse(path, toks)
}

// --- tokenizer --------------------------------------------------------

type token struct {
	text string
}

func tokenize(src string) ([]token, error) {
	var toks []token
	lines := strings.Split(src, "\n")
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "////") {
			continue
		}
		i := 0
		for i < len(line) {
			r := line[i]
			switch {
			case r == ' ' || r == '\t' || r == '\r':
				i++
			case r == '{' || r == '}' || r == ',' || r == '=':
				toks = append(toks, token{string(r)})
				i++
			case r == '-' && i+1 < len(line) && line[i+1] == '>':
				toks = append(toks, token{"->"})
				i += 2
			default:
				start := i
				for i < len(line) {
					c := line[i]
					if c == ' ' || c == '\t' || c == '\r' || c == '{' || c == '}' || c == ',' || c == '=' {
						break
					}
					if c == '-' && i+1 < len(line) && line[i+1] == '>' {
						break
					}
					i++
				}
				word := line[start:i]
				if word != "" {
					toks = append(toks, token{word})
				}
			}
		}
	}
	return toks, nil
}

// --- parser -------------------------------------------------------------

type parser struct {
	path string
	toks []token
	pos  int
}

func parse(path string, toks []token) (*Grammar, error) {
	p := &parser{path: path, toks: toks}
	g := &Grammar{
		Terminals:    make(map[Symbol]bool),
		NonTerminals: make(map[Symbol]bool),
		Productions:  make(map[Symbol][]*Production),
		ByNumber:     []*Production{nil}, // index 0 unused
	}

	var sawTerminales, sawNoTerminales, sawAxioma, sawProducciones bool

	for !p.atEnd() {
		sec := p.next()
		switch sec.text {
		case "Terminales":
			if err := p.expect("="); err != nil {
				return nil, err
			}
			syms, err := p.parseBracedList()
			if err != nil {
				return nil, err
			}
			for _, s := range syms {
				g.Terminals[s] = true
			}
			sawTerminales = true
		case "NoTerminales":
			if err := p.expect("="); err != nil {
				return nil, err
			}
			syms, err := p.parseBracedList()
			if err != nil {
				return nil, err
			}
			for _, s := range syms {
				g.NonTerminals[s] = true
			}
			sawNoTerminales = true
		case "Axioma":
			if err := p.expect("="); err != nil {
				return nil, err
			}
			axiom := p.next()
			if axiom.text == "" {
				return nil, p.fatal("Axioma has no value")
			}
			g.Axiom = Symbol(axiom.text)
			sawAxioma = true
		case "Producciones":
			if err := p.expect("="); err != nil {
				return nil, err
			}
			if err := p.expect("{"); err != nil {
				return nil, err
			}
			if err := p.parseProductions(g); err != nil {
				return nil, err
			}
			sawProducciones = true
		default:
			return nil, p.fatal(fmt.Sprintf("unexpected section %q", sec.text))
		}
	}

	if !sawTerminales {
		return nil, p.fatal("missing Terminales section")
	}
	if !sawNoTerminales {
		return nil, p.fatal("missing NoTerminales section")
	}
	if !sawAxioma {
		return nil, p.fatal("missing Axioma section")
	}
	if !sawProducciones {
		return nil, p.fatal("missing Producciones section")
	}
	if !g.NonTerminals[g.Axiom] {
		return nil, p.fatal(fmt.Sprintf("axiom %q is not a declared non-terminal", g.Axiom))
	}
	return g, nil
}

func (p *parser) parseProductions(g *Grammar) error {
	number := 1
	for {
		if p.atEnd() {
			return p.fatal("unterminated Producciones section")
		}
		if p.peek().text == "}" {
			p.next()
			return nil
		}
		lhsTok := p.next()
		lhs := Symbol(lhsTok.text)
		if !g.NonTerminals[lhs] {
			return p.fatal(fmt.Sprintf("production left-hand side %q is not a declared non-terminal", lhs))
		}
		if err := p.expect("->"); err != nil {
			return err
		}
		var rhs []Symbol
		for !p.atEnd() && p.peek().text != "}" {
			next := p.peek()
			// A new production starts when the following token is
			// immediately followed by "->". We detect
			// the end of the current RHS by checking whether the token
			// after next is "->": if so, `next` begins a new LHS, not part
			// of this RHS.
			if p.isNextLHS() {
				break
			}
			rhs = append(rhs, Symbol(next.text))
			p.next()
		}
		if len(rhs) == 0 {
			return p.fatal(fmt.Sprintf("production for %q has an empty right-hand side", lhs))
		}
		for _, sym := range rhs {
			if sym == Lambda {
				continue
			}
			if !g.NonTerminals[sym] && !g.IsTerminal(sym) {
				return p.fatal(fmt.Sprintf("unknown grammar symbol %q in production %d", sym, number))
			}
		}
		prod := &Production{LHS: lhs, RHS: rhs, Number: number}
		g.Productions[lhs] = append(g.Productions[lhs], prod)
		g.ByNumber = append(g.ByNumber, prod)
		number++
	}
}

// isNextLHS reports whether the parser is positioned at the start of a new
// `LHS -> ...` production rather than in the middle of the current RHS.
func (p *parser) isNextLHS() bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].text == "->"
}

func (p *parser) parseBracedList() ([]Symbol, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	var syms []Symbol
	for {
		if p.atEnd() {
			return nil, p.fatal("unterminated symbol list")
		}
		t := p.peek()
		if t.text == "}" {
			p.next()
			return syms, nil
		}
		if t.text == "," {
			p.next()
			continue
		}
		syms = append(syms, Symbol(t.text))
		p.next()
	}
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) expect(text string) error {
	t := p.next()
	if t.text != text {
		return p.fatal(fmt.Sprintf("expected %q, got %q", text, t.text))
	}
	return nil
}

func (p *parser) fatal(reason string) error {
	return &LoadError{Path: p.path, Reason: reason}
}
