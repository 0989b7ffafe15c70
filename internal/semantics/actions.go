package semantics

import (
	"myjsc/internal/symtab"
	"myjsc/internal/token"
)

// ValueForToken is the value a matched terminal pushes onto the attribute
// stack before its enclosing production's action runs. Punctuation and
// keywords with no attribute payload push nothing (returns false).
func ValueForToken(tok token.Token, syms *symtab.Table) (Value, bool) {
	switch tok.Kind {
	case token.KindID:
		h := tok.Attr.(token.Handle)
		return Rec{Record: syms.RecordAt(uint32(h))}, true
	case token.KindIntConst:
		return Primitive{"int"}, true
	case token.KindRealConst:
		return Primitive{"float"}, true
	case token.KindStr:
		return Primitive{"string"}, true
	case token.KindTrue, token.KindFalse:
		return Primitive{"boolean"}, true
	default:
		return nil, false
	}
}

// Hooks is the set of actions scheduled around one production's RHS. Most
// productions register an Exit; productions 54-58 (Factor -> literal)
// register none. Entry and Mid are used only by the handful of productions that
// need an attribute before all of their RHS has reduced (the
// function-signature-before-body and block-scoping requirements).
type Hooks struct {
	Entry Action
	// MidAfter, if non-zero, is the 1-based RHS position after which Mid
	// fires, once that symbol (and everything under it) has reduced.
	MidAfter int
	Mid      Action
	Exit     Action
}

// HooksFor returns the hooks registered for a production, by its 1-based
// position in Gramatica.txt's Producciones block. A nil hook is skipped by
// the analyzer.
func HooksFor(prodNumber int) Hooks {
	return productionHooks[prodNumber]
}

// isErrorTag reports whether a propagated type tag stands for "already
// reported, do not check again" (either an explicit TypeError, or the empty
// tag used by List to carry the same meaning positionally).
func isErrorTag(tag string) bool { return tag == "" }

func tagOf(v Value) (string, bool) {
	switch t := v.(type) {
	case Primitive:
		return t.Tag, true
	case TypeError:
		return "", true
	}
	return "", false
}

func combineNumeric(env Env, op func(a, b string) (string, bool), opName string, left, right Value) Value {
	if _, isErr := left.(TypeError); isErr {
		return TypeError{}
	}
	if _, isErr := right.(TypeError); isErr {
		return TypeError{}
	}
	lt, lok := tagOf(left)
	rt, rok := tagOf(right)
	if !lok || !rok {
		return TypeError{}
	}
	result, ok := op(lt, rt)
	if !ok {
		env.Errorf("tipos de operando incompatibles %q y %q para %s", lt, rt, opName)
		return TypeError{}
	}
	return Primitive{result}
}

// checkCall validates a call's argument types against a callee record's
// stored signature. Call-site checking requires the
// argument-type product to string-equal the declared argument product
// exactly — unlike assignment, there is no int->float widening across a
// call boundary.
func checkCall(env Env, callee *symtab.Record, argTypes []string) Value {
	if callee.KindHint != symtab.KindFunction {
		env.Errorf("%q no es una función", callee.Lexeme)
		return TypeError{}
	}
	params, ret := DecodeSignature(callee.Type.Signature)

	for _, t := range argTypes {
		if isErrorTag(t) {
			// An argument already poisoned upstream; stay silent and let the
			// call's own result type flow on rather than cascade a second error.
			if ret == "void" {
				return Void{}
			}
			return Primitive{ret}
		}
	}
	if !productsEqual(params, argTypes) {
		env.Errorf("los argumentos de %q no coinciden con su firma declarada", callee.Lexeme)
		return TypeError{}
	}
	if ret == "void" {
		return Void{}
	}
	return Primitive{ret}
}

func productsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func declareVariable(env Env, rec *symtab.Record, typeTag string, hint symtab.KindHint) {
	if typeTag == "void" {
		env.Errorf("%q no puede declararse de tipo void", rec.Lexeme)
	}
	rec.Type = symtab.Type{Tag: typeTag}
	rec.HasType = true
	rec.KindHint = hint
	global := !env.Syms().InFunction()
	rec.Displacement = env.NextDisp(global, Width[typeTag])
	rec.HasDisp = true
}

// ensureDeclared implements MyJS's implicit-declaration convention: an
// identifier used in expression position that was never declared is
// silently typed int and allocated in the global data area, regardless of
// how deeply nested the use is.
func ensureDeclared(env Env, rec *symtab.Record) {
	if rec.HasType {
		return
	}
	rec.Type = symtab.Type{Tag: "int"}
	rec.HasType = true
	if rec.KindHint == symtab.KindUnknown {
		rec.KindHint = symtab.KindVariable
	}
	rec.Displacement = env.NextDisp(true, Width["int"])
	rec.HasDisp = true
}

var productionHooks = map[int]Hooks{
	// 1: Programa -> ListaDecl
	1: {Exit: func(env Env) {
		env.Pop()
		env.Push(Ok{})
	}},
	// 2: ListaDecl -> Decl ListaDecl
	2: {Exit: func(env Env) {
		env.Pop()
		env.Pop()
		env.Push(Ok{})
	}},
	// 3: ListaDecl -> lambda
	3: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 4: Decl -> DeclFunc
	4: {Exit: func(env Env) {
		env.Pop()
		env.Push(Ok{})
	}},
	// 5: Decl -> DeclVar semicolon
	5: {Exit: func(env Env) {
		env.Pop()
		env.Push(Ok{})
	}},
	// 6: DeclFunc -> function Tipo id oppar ListaParam clpar Bloque
	6: {
		MidAfter: 5,
		Mid: func(env Env) {
			params := env.Pop().(List)
			recv := env.Pop().(Rec)
			ret := env.Pop().(Primitive)
			recv.Record.Type = symtab.Type{Signature: EncodeSignature(params.Types, ret.Tag)}
			recv.Record.HasType = true
			recv.Record.KindHint = symtab.KindFunction
			env.PushReturnType(ret.Tag)
		},
		Exit: func(env Env) {
			env.Pop() // Bloque's Ok
			env.PopReturnType()
			env.Push(Ok{})
		},
	},
	// 7: ListaParam -> Tipo id ListaParamResto
	7: {Exit: func(env Env) {
		resto := env.Pop().(List)
		rec := env.Pop().(Rec)
		tipo := env.Pop().(Primitive)
		declareVariable(env, rec.Record, tipo.Tag, symtab.KindParameter)
		env.Push(List{Types: append([]string{tipo.Tag}, resto.Types...)})
	}},
	// 8: ListaParam -> lambda
	8: {Exit: func(env Env) { env.Push(List{}) }},
	// 9: ListaParamResto -> comma Tipo id ListaParamResto
	9: {Exit: func(env Env) {
		resto := env.Pop().(List)
		rec := env.Pop().(Rec)
		tipo := env.Pop().(Primitive)
		declareVariable(env, rec.Record, tipo.Tag, symtab.KindParameter)
		env.Push(List{Types: append([]string{tipo.Tag}, resto.Types...)})
	}},
	// 10: ListaParamResto -> lambda
	10: {Exit: func(env Env) { env.Push(List{}) }},
	// 11-15: Tipo -> int | float | boolean | string | void
	11: {Exit: func(env Env) { env.Push(Primitive{"int"}) }},
	12: {Exit: func(env Env) { env.Push(Primitive{"float"}) }},
	13: {Exit: func(env Env) { env.Push(Primitive{"boolean"}) }},
	14: {Exit: func(env Env) { env.Push(Primitive{"string"}) }},
	15: {Exit: func(env Env) { env.Push(Primitive{"void"}) }},
	// 16: DeclVar -> let Tipo id DeclVarResto
	16: {Exit: func(env Env) {
		init := env.Pop()
		rec := env.Pop().(Rec)
		tipo := env.Pop().(Primitive)
		declareVariable(env, rec.Record, tipo.Tag, symtab.KindVariable)
		switch v := init.(type) {
		case Primitive:
			if !AssignableTo(tipo.Tag, v.Tag) {
				env.Errorf("Asignación incorrecta en 'let %s'", rec.Record.Lexeme)
			}
		case TypeError:
			// already reported
		}
		env.Push(Ok{})
	}},
	// 17: DeclVarResto -> eq Expr
	17: {Exit: func(env Env) {
		v := env.Pop()
		env.Push(v)
	}},
	// 18: DeclVarResto -> lambda
	18: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 19: Bloque -> opbra ListaSent clbra
	19: {
		Entry: func(env Env) {
			if !env.Syms().InFunction() {
				env.ResetLocalDisp()
			}
			env.Syms().PushScope()
		},
		Exit: func(env Env) {
			env.Pop()
			env.Syms().PopScope()
			env.Push(Ok{})
		},
	},
	// 20: ListaSent -> Sent ListaSent
	20: {Exit: func(env Env) {
		env.Pop()
		env.Pop()
		env.Push(Ok{})
	}},
	// 21: ListaSent -> lambda
	21: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 22-28: Sent alternatives, all pass-through to Ok
	22: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	23: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	24: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	25: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	26: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	27: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	28: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	// 29: SentIf -> if oppar Expr clpar Bloque SentIfResto
	29: {Exit: func(env Env) {
		env.Pop() // SentIfResto
		env.Pop() // Bloque
		cond := env.Pop()
		if p, ok := cond.(Primitive); ok && p.Tag != "boolean" {
			env.Errorf("la condición del if debe ser boolean, se recibió %q", p.Tag)
		}
		env.Push(Ok{})
	}},
	// 30: SentIfResto -> else Bloque
	30: {Exit: func(env Env) { env.Pop(); env.Push(Ok{}) }},
	// 31: SentIfResto -> lambda
	31: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 32: SentReturn -> return ExprOpt
	32: {Exit: func(env Env) {
		v := env.Pop()
		retType, inFunc := env.CurrentReturnType()
		if !inFunc {
			env.Errorf("return fuera de una función")
			env.Push(Ok{})
			return
		}
		switch val := v.(type) {
		case Ok:
			if retType != "void" {
				env.Errorf("la función declarada %q debe devolver un valor", retType)
			}
		case Primitive:
			if retType == "void" {
				env.Errorf("una función void no puede devolver un valor")
			} else if !AssignableTo(retType, val.Tag) {
				env.Errorf("el valor devuelto de tipo %q no es asignable al tipo de retorno %q", val.Tag, retType)
			}
		case TypeError:
			// already reported
		}
		env.Push(Ok{})
	}},
	// 33: ExprOpt -> Expr
	33: {Exit: func(env Env) { v := env.Pop(); env.Push(v) }},
	// 34: ExprOpt -> lambda
	34: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 35: SentWrite -> write oppar Expr clpar
	// write() accepts int/float/string; boolean (and a void call result) are
	// explicitly rejected by the built-ins rule.
	35: {Exit: func(env Env) {
		v := env.Pop()
		switch val := v.(type) {
		case Primitive:
			if val.Tag == "boolean" {
				env.Errorf("write() no soporta el tipo %s", val.Tag)
			}
		case Void:
			env.Errorf("write() no soporta el tipo void")
		}
		env.Push(Ok{})
	}},
	// 36: SentRead -> read oppar id clpar
	// read() always succeeds type-wise; an undeclared target is implicitly
	// declared rather than rejected.
	36: {Exit: func(env Env) {
		rec := env.Pop().(Rec)
		ensureDeclared(env, rec.Record)
		if rec.Record.KindHint == symtab.KindFunction {
			env.Errorf("%q es una función y no puede ser destino de read()", rec.Record.Lexeme)
		}
		env.Push(Ok{})
	}},
	// 37: SentId -> id SentIdResto
	37: {Exit: func(env Env) {
		env.Pop() // SentIdResto's Ok
		env.Pop() // the id's Rec, inherited by SentIdResto via Peek
		env.Push(Ok{})
	}},
	// 38: SentIdResto -> eq Expr
	38: {Exit: func(env Env) {
		rec := env.Peek(1).(Rec)
		v := env.Pop()
		ensureDeclared(env, rec.Record)
		if rec.Record.KindHint == symtab.KindFunction {
			env.Errorf("%q es una función y no puede asignársele un valor", rec.Record.Lexeme)
		} else if p, ok := v.(Primitive); ok {
			if !AssignableTo(rec.Record.Type.Tag, p.Tag) {
				env.Errorf("Asignación incorrecta en '%s'", rec.Record.Lexeme)
			}
		}
		env.Push(Ok{})
	}},
	// 39: SentIdResto -> pluseq Expr
	39: {Exit: func(env Env) {
		rec := env.Peek(1).(Rec)
		v := env.Pop()
		ensureDeclared(env, rec.Record)
		if rec.Record.KindHint == symtab.KindFunction {
			env.Errorf("%q es una función y no puede ser destino de +=", rec.Record.Lexeme)
			env.Push(Ok{})
			return
		}
		declTag := rec.Record.Type.Tag
		if !isNumeric(declTag) {
			env.Errorf("+= requiere una variable numérica; %q es de tipo %q", rec.Record.Lexeme, declTag)
		} else if p, ok := v.(Primitive); ok && !isNumeric(p.Tag) {
			env.Errorf("+= requiere un operando numérico, se recibió %q", p.Tag)
		}
		env.Push(Ok{})
	}},
	// 40: SentIdResto -> oppar ListaArgs clpar
	40: {Exit: func(env Env) {
		rec := env.Peek(1).(Rec)
		args := env.Pop().(List)
		ensureDeclared(env, rec.Record)
		checkCall(env, rec.Record, args.Types)
		env.Push(Ok{})
	}},
	// 41: ListaArgs -> Expr ListaArgsResto
	41: {Exit: func(env Env) {
		resto := env.Pop().(List)
		arg := env.Pop()
		tag, _ := tagOf(arg)
		env.Push(List{Types: append([]string{tag}, resto.Types...)})
	}},
	// 42: ListaArgs -> lambda
	42: {Exit: func(env Env) { env.Push(List{}) }},
	// 43: ListaArgsResto -> comma Expr ListaArgsResto
	43: {Exit: func(env Env) {
		resto := env.Pop().(List)
		arg := env.Pop()
		tag, _ := tagOf(arg)
		env.Push(List{Types: append([]string{tag}, resto.Types...)})
	}},
	// 44: ListaArgsResto -> lambda
	44: {Exit: func(env Env) { env.Push(List{}) }},
	// 45: Expr -> ExprComp ExprAndResto
	45: {Exit: func(env Env) {
		resto := env.Pop()
		left := env.Pop()
		if _, empty := resto.(Ok); empty {
			env.Push(left)
			return
		}
		env.Push(combineNumeric(env, And, "&&", left, resto))
	}},
	// 46: ExprAndResto -> and ExprComp ExprAndResto
	46: {Exit: func(env Env) {
		inner := env.Pop()
		right := env.Pop()
		if _, empty := inner.(Ok); empty {
			env.Push(right)
			return
		}
		env.Push(combineNumeric(env, And, "&&", right, inner))
	}},
	// 47: ExprAndResto -> lambda
	47: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 48: ExprComp -> ExprSum ExprCompResto
	48: {Exit: func(env Env) {
		resto := env.Pop()
		left := env.Pop()
		if _, empty := resto.(Ok); empty {
			env.Push(left)
			return
		}
		env.Push(combineNumeric(env, Less, "<", left, resto))
	}},
	// 49: ExprCompResto -> minorthan ExprSum
	49: {Exit: func(env Env) { v := env.Pop(); env.Push(v) }},
	// 50: ExprCompResto -> lambda
	50: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 51: ExprSum -> Factor ExprSumResto
	51: {Exit: func(env Env) {
		resto := env.Pop()
		left := env.Pop()
		if _, empty := resto.(Ok); empty {
			env.Push(left)
			return
		}
		env.Push(combineNumeric(env, Sum, "+", left, resto))
	}},
	// 52: ExprSumResto -> sum Factor ExprSumResto
	52: {Exit: func(env Env) {
		inner := env.Pop()
		right := env.Pop()
		if _, empty := inner.(Ok); empty {
			env.Push(right)
			return
		}
		env.Push(combineNumeric(env, Sum, "+", right, inner))
	}},
	// 53: ExprSumResto -> lambda
	53: {Exit: func(env Env) { env.Push(Ok{}) }},
	// 54-58: Factor -> intconst | floatconst | str | true | false
	// The terminal match already pushed the right Primitive; nothing to do.
	54: {},
	55: {},
	56: {},
	57: {},
	58: {},
	// 59: Factor -> id FactorIdResto
	59: {Exit: func(env Env) {
		v := env.Pop()
		env.Pop() // the id's Rec, inherited by FactorIdResto via Peek
		env.Push(v)
	}},
	// 60: Factor -> oppar Expr clpar
	60: {Exit: func(env Env) { v := env.Pop(); env.Push(v) }},
	// 61: FactorIdResto -> oppar ListaArgs clpar
	61: {Exit: func(env Env) {
		rec := env.Peek(1).(Rec)
		args := env.Pop().(List)
		ensureDeclared(env, rec.Record)
		result := checkCall(env, rec.Record, args.Types)
		env.Push(result)
	}},
	// 62: FactorIdResto -> lambda
	// A bare identifier reference in expression position: implicitly
	// declared as int/global if never declared.
	62: {Exit: func(env Env) {
		rec := env.Peek(0).(Rec)
		ensureDeclared(env, rec.Record)
		if rec.Record.KindHint == symtab.KindFunction {
			env.Errorf("%q es una función y debe invocarse", rec.Record.Lexeme)
			env.Push(TypeError{})
			return
		}
		env.Push(Primitive{rec.Record.Type.Tag})
	}},
}
