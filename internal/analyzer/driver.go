package analyzer

import (
	"myjsc/internal/grammar"
	"myjsc/internal/report"
	"myjsc/internal/semantics"
	"myjsc/internal/token"
)

func (c *Context) current() token.Token {
	if c.pos >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1] // the EOF sentinel the lexer always appends
	}
	return c.tokens[c.pos]
}

func (c *Context) advance() {
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
}

// Analyze drives the predictive parse to completion, applying semantic
// actions as each production reduces. A syntactic error is fatal: the
// first one stops the analysis immediately so that parse.txt is never
// written for a rejected program. Semantic errors are not fatal — they are
// reported at the point of detection, poison the attribute stack with a
// TypeError, and analysis continues.
func (c *Context) Analyze() {
	for !c.control.Empty() {
		top, _ := c.control.Get(c.control.Size() - 1)
		item := top.(controlItem)
		c.control.Remove(c.control.Size() - 1)

		if item.isHook {
			if item.hook != nil {
				item.hook(c)
			}
			continue
		}

		if c.g.IsTerminal(item.sym) {
			if !c.matchTerminal(item.sym) {
				return
			}
			continue
		}
		if !c.expandNonTerminal(item.sym) {
			return
		}
	}
}

// matchTerminal reports whether the match succeeded; false means a
// syntactic error was raised and analysis must stop.
func (c *Context) matchTerminal(sym grammar.Symbol) bool {
	tok := c.current()
	if tok.Kind.Terminal() != string(sym) {
		c.errs.Add(report.PhaseSyntactic, tok.Line, "expected %q, found %q", sym, tok.Kind.Terminal())
		return false
	}
	if v, ok := semantics.ValueForToken(tok, c.syms); ok {
		c.Push(v)
	}
	c.line = tok.Line
	c.lastConsumed = tok
	c.advance()
	return true
}

func (c *Context) expandNonTerminal(sym grammar.Symbol) bool {
	tok := c.current()
	lookahead := grammar.Symbol(tok.Kind.Terminal())
	prod := c.table.Lookup(sym, lookahead)
	if prod == nil {
		c.errs.Add(report.PhaseSyntactic, tok.Line, "unexpected %q while parsing %s", lookahead, sym)
		return false
	}

	c.derivation = append(c.derivation, prod.Number)
	c.schedule(prod)
	return true
}

// schedule pushes prod's RHS symbols and its registered hooks onto the
// control stack, in an order that pops them left to right. Entry hooks run
// immediately (they fire at selection time, before any RHS has reduced);
// Mid and Exit hooks are spliced into the control stack so they fire once
// the preceding RHS symbols have actually reduced.
func (c *Context) schedule(prod *grammar.Production) {
	hooks := semantics.HooksFor(prod.Number)
	if hooks.Entry != nil {
		hooks.Entry(c)
	}

	var steps []controlItem
	if !prod.IsLambda() {
		for i, sym := range prod.RHS {
			steps = append(steps, controlItem{sym: sym})
			if hooks.MidAfter == i+1 {
				steps = append(steps, controlItem{isHook: true, hook: hooks.Mid})
			}
		}
	}
	steps = append(steps, controlItem{isHook: true, hook: hooks.Exit})

	for i := len(steps) - 1; i >= 0; i-- {
		c.control.Add(steps[i])
	}
}
