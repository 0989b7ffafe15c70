// Package semantics implements MyJS's attribute-grammar-style translation
// scheme: the value types synthesized at each production, the type/coercion
// rules between them, and the per-production action functions the
// predictive analyzer schedules as it reduces.
//
// Grounded on ictiobus/types/sdd.go's SyntaxDirectedDefinition and
// ictiobus/translation/translation.go's SDD interface (BindInheritedAttribute,
// BindSynthesizedAttribute, Bindings): the same inherited/synthesized
// attribute split, collapsed here into a single Value stack plus per-production
// Hooks since MyJS's grammar is small enough not to need a general binding
// graph.
package semantics

import "myjsc/internal/symtab"

// Value is the attribute carried on the analyzer's value stack between a
// production's RHS symbols and the action that reduces them.
type Value interface {
	isValue()
}

// Primitive is a synthesized expression type: "int", "float", "boolean" or
// "string".
type Primitive struct{ Tag string }

func (Primitive) isValue() {}

// Void is the synthesized type of a function declared to return nothing.
type Void struct{}

func (Void) isValue() {}

// TypeError marks a production whose children already produced a type
// error, so the enclosing production should check silently rather than
// reissue the same complaint (stops cascades).
type TypeError struct{}

func (TypeError) isValue() {}

// Ok is returned by productions with no meaningful synthesized type
// (statements, declarations without a value) once they've type-checked
// successfully.
type Ok struct{}

func (Ok) isValue() {}

// Rec carries a resolved symbol table record up from an `id` terminal so
// enclosing productions (declarations, assignments, calls) can read or
// mutate it without a second lookup.
type Rec struct{ Record *symtab.Record }

func (Rec) isValue() {}

// List carries an ordered list of primitive type tags: a parameter list or
// an argument list, synthesized bottom-up by the ...Resto productions.
type List struct{ Types []string }

func (List) isValue() {}

// Signature pairs a function's parameter types with its return type. No
// production action pushes it: DeclFunc stores the signature on the
// function's record via EncodeSignature and synthesizes Ok.
type Signature struct {
	Params []string
	Ret    string
}

func (Signature) isValue() {}
