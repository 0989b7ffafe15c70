// Package symtab implements MyJS's scoped symbol table: a stack of scopes
// with a process-wide monotonic handle counter, mutated by the lexer (which
// interns identifiers) and the semantic evaluator (which fills in type and
// displacement).
//
// Grounded on npillmayer-gorgo/runtime/symtable.go's Scope/ScopeTree: scopes
// are parent-linked, and Resolve walks outward through enclosing scopes
// before a new record is created — the "visible in any enclosing scope"
// interning policy required so call sites see a function's handle from
// inside the function's own body.
package symtab

// KindHint classifies what interned a lexeme, before the semantic layer has
// assigned a real type.
type KindHint int

const (
	KindUnknown KindHint = iota
	KindVariable
	KindFunction
	KindParameter
)

// Type is either a primitive tag or a function signature, set by the
// semantic evaluator once a declaration's type is known.
type Type struct {
	Tag       string // "int" | "float" | "boolean" | "string" | "void", or "" if Signature set
	Signature string // "<arg-product>|<ret>" (semantics.EncodeSignature), or "" if Tag set
}

func (t Type) IsZero() bool { return t.Tag == "" && t.Signature == "" }

// Record is one symbol table entry.
type Record struct {
	Lexeme       string
	KindHint     KindHint
	Type         Type
	Position     uint32 // dense, monotonic, process-unique handle
	Displacement uint32
	HasType      bool
	HasDisp      bool
}

// scope is an insertion-ordered lexeme -> *Record mapping.
type scope struct {
	order   []string
	records map[string]*Record
}

func newScope() *scope {
	return &scope{records: make(map[string]*Record)}
}

// Table is the stack of scopes plus the global handle counter.
type Table struct {
	scopes  []*scope
	records []*Record // all records, indexed by Position
	nextPos uint32
}

// New creates a table with one (global) scope pushed.
func New() *Table {
	t := &Table{}
	t.PushScope()
	return t
}

// PushScope opens a new, innermost scope.
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, newScope())
}

// PopScope closes the innermost scope. Panics if called on the global scope.
func (t *Table) PopScope() {
	if len(t.scopes) <= 1 {
		panic("symtab: attempt to pop the global scope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// InFunction reports whether a non-global scope is currently open.
func (t *Table) InFunction() bool { return len(t.scopes) > 1 }

// Resolve looks up a lexeme from the innermost scope outward. Returns the
// record and true if found in any visible scope.
func (t *Table) Resolve(lexeme string) (*Record, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if rec, ok := t.scopes[i].records[lexeme]; ok {
			return rec, true
		}
	}
	return nil, false
}

// Intern returns the existing record for lexeme if it is visible in any
// enclosing scope, otherwise allocates a fresh record with a new global
// position in the current (innermost) scope.
func (t *Table) Intern(lexeme string, hint KindHint) *Record {
	if rec, ok := t.Resolve(lexeme); ok {
		return rec
	}
	rec := &Record{
		Lexeme:   lexeme,
		KindHint: hint,
		Position: t.nextPos,
	}
	t.nextPos++
	cur := t.scopes[len(t.scopes)-1]
	cur.order = append(cur.order, lexeme)
	cur.records[lexeme] = rec
	t.records = append(t.records, rec)
	return rec
}

// ByPosition returns all interned records ordered by Position (as symbols.txt
// requires).
func (t *Table) ByPosition() []*Record {
	return t.records
}

// RecordAt returns the record interned at the given position. Positions are
// assigned densely starting at 0, so this is a direct index.
func (t *Table) RecordAt(pos uint32) *Record {
	if int(pos) >= len(t.records) {
		return nil
	}
	return t.records[pos]
}

// Len returns the number of interned records.
func (t *Table) Len() int { return len(t.records) }
