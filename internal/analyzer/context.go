// Package analyzer implements MyJS's table-driven predictive pushdown
// analyzer: it drives the parse from the LL(1) table built by internal/ll1,
// interleaving grammar symbols on its control stack with the semantic
// actions internal/semantics registers per production, so type-checking and
// parsing happen in the same left-to-right pass.
//
// Grounded on tunascript/parser.go's LL1PredictiveParse and
// ictiobus/parse/ll1.go's ll1Parser.Parse: both push the start symbol and
// "$" onto a symbol stack, loop while the top of stack isn't "$", match
// terminals directly against the lookahead token and expand non-terminals
// via a table lookup that pushes the chosen production's RHS in reverse.
// This package interleaves that loop with a parallel value stack so a
// semantic action runs at the same point a production is chosen, instead of
// building a parse tree first and walking it afterward.
package analyzer

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"myjsc/internal/grammar"
	"myjsc/internal/ll1"
	"myjsc/internal/report"
	"myjsc/internal/semantics"
	"myjsc/internal/symtab"
	"myjsc/internal/token"
)

// Context is the analyzer's running state: the control stack that drives
// the parse, the attribute stack semantic actions read and write, and the
// bookkeeping (scope, displacement, return type) semantics.Env exposes.
type Context struct {
	g     *grammar.Grammar
	table *ll1.Table
	syms  *symtab.Table
	errs  *report.ErrorList

	tokens []token.Token
	pos    int
	line   uint32

	control *arraylist.List // of controlItem
	values  []semantics.Value

	returnTypes  []string
	globalDisp   uint32
	localDisp    uint32
	derivation   []int // production numbers applied, in order
	lastConsumed token.Token
}

// controlItem is one entry on the control stack: a grammar symbol awaiting a
// table lookup or a terminal match, or a semantics.Action hook to run in
// place.
type controlItem struct {
	sym    grammar.Symbol
	isHook bool
	hook   semantics.Action
}

// New creates a Context ready to analyze tokens against g using table.
func New(g *grammar.Grammar, table *ll1.Table, tokens []token.Token, syms *symtab.Table, errs *report.ErrorList) *Context {
	c := &Context{
		g:       g,
		table:   table,
		syms:    syms,
		errs:    errs,
		tokens:  tokens,
		control: arraylist.New(),
	}
	c.control.Add(controlItem{sym: grammar.EOF})
	c.control.Add(controlItem{sym: g.Axiom})
	return c
}

// --- semantics.Env ---

func (c *Context) Push(v semantics.Value) { c.values = append(c.values, v) }

func (c *Context) Pop() semantics.Value {
	n := len(c.values)
	v := c.values[n-1]
	c.values = c.values[:n-1]
	return v
}

func (c *Context) Peek(offset int) semantics.Value {
	return c.values[len(c.values)-1-offset]
}

func (c *Context) Syms() *symtab.Table { return c.syms }

func (c *Context) PushReturnType(tag string) {
	c.returnTypes = append(c.returnTypes, tag)
}

func (c *Context) PopReturnType() {
	c.returnTypes = c.returnTypes[:len(c.returnTypes)-1]
}

func (c *Context) CurrentReturnType() (string, bool) {
	if len(c.returnTypes) == 0 {
		return "", false
	}
	return c.returnTypes[len(c.returnTypes)-1], true
}

func (c *Context) ResetLocalDisp() { c.localDisp = 0 }

func (c *Context) NextDisp(global bool, width uint32) uint32 {
	if global {
		d := c.globalDisp
		c.globalDisp += width
		return d
	}
	d := c.localDisp
	c.localDisp += width
	return d
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.errs.Add(report.PhaseSemantic, c.line, format, args...)
}

// Derivation returns the sequence of production numbers applied, in the
// order the analyzer applied them — parse.txt's content.
func (c *Context) Derivation() []int { return c.derivation }

// Accepted reports whether the analyzer consumed every token through EOF
// without hitting a fatal syntactic error — the precondition for writing
// parse.txt, which is written only if there were no lexical or syntactic
// errors.
func (c *Context) Accepted() bool {
	return c.control.Empty() && c.errs.Count(report.PhaseSyntactic) == 0
}
