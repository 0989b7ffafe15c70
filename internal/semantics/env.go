package semantics

import "myjsc/internal/symtab"

// Env is the surface an Action needs from the analyzer driving it: the
// shared attribute value stack, the symbol table, scope/displacement
// bookkeeping and error reporting. internal/analyzer's Context implements
// this so semantics stays independent of the parsing engine.
type Env interface {
	Push(v Value)
	Pop() Value
	// Peek returns the value `offset` slots below the top (0 = top)
	// without removing it. Used where a production needs a value produced
	// by an earlier sibling still sitting on the stack (the `id` record an
	// assignment or call production operates on).
	Peek(offset int) Value

	Syms() *symtab.Table

	// PushReturnType/PopReturnType/CurrentReturnType track the return type
	// of the function whose body is currently being checked, so `return`
	// statements can validate against it.
	PushReturnType(tag string)
	PopReturnType()
	CurrentReturnType() (string, bool)

	// NextDisp allocates the next storage displacement for a width-byte
	// value, in the global table if global is true, otherwise in the
	// current function's local table.
	NextDisp(global bool, width uint32) uint32
	ResetLocalDisp()

	// Errorf reports a semantic error at the current token's line.
	Errorf(format string, args ...interface{})
}

// Action is a single hook scheduled by the analyzer: either a production's
// final (exit) action, its entry action, or a hand-placed mid-rule action.
type Action func(env Env)
