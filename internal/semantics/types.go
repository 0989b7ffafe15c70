package semantics

import "strings"

// Storage widths in bytes: int=2, float=4, boolean=1, string=64.
var Width = map[string]uint32{
	"int":     2,
	"float":   4,
	"boolean": 1,
	"string":  64,
}

func isNumeric(t string) bool { return t == "int" || t == "float" }

// Coerce implements MyJS's only implicit conversion: int widens to float
// when mixed with a float operand. Returns the unified type and whether the
// pair is type-compatible at all.
func Coerce(a, b string) (string, bool) {
	if a == b {
		return a, true
	}
	if isNumeric(a) && isNumeric(b) {
		return "float", true
	}
	return "", false
}

// Sum implements the `+` operator's typing rule: both operands numeric,
// coerced per Coerce.
func Sum(a, b string) (string, bool) {
	if !isNumeric(a) || !isNumeric(b) {
		return "", false
	}
	return Coerce(a, b)
}

// Less implements `<`: both operands numeric, result is boolean.
func Less(a, b string) (string, bool) {
	if !isNumeric(a) || !isNumeric(b) {
		return "", false
	}
	return "boolean", true
}

// And implements `&&`: both operands boolean, result boolean.
func And(a, b string) (string, bool) {
	if a != "boolean" || b != "boolean" {
		return "", false
	}
	return "boolean", true
}

// AssignableTo reports whether a value of type src can be stored into a
// variable declared as dst: equal types always, or int widened into float.
func AssignableTo(dst, src string) bool {
	if dst == src {
		return true
	}
	return dst == "float" && src == "int"
}

// EncodeSignature/DecodeSignature serialize a function's parameter types and
// return type into symtab.Type.Signature, so a Record stays a flat value
// type instead of growing a parallel side table keyed by pointer identity.
// A parameterless function's argument product is the literal "void", per the
// "empty args -> void -> ret" composition rule.
func EncodeSignature(params []string, ret string) string {
	argsProduct := "void"
	if len(params) > 0 {
		argsProduct = strings.Join(params, ",")
	}
	return argsProduct + "|" + ret
}

func DecodeSignature(sig string) (params []string, ret string) {
	parts := strings.SplitN(sig, "|", 2)
	if len(parts) != 2 {
		return nil, ""
	}
	argsProduct, ret := parts[0], parts[1]
	if argsProduct == "void" {
		return nil, ret
	}
	return strings.Split(argsProduct, ","), ret
}

// SignatureDisplay renders a stored signature as "<arg-product> -> <ret>"
// for symbols.txt.
func SignatureDisplay(sig string) string {
	parts := strings.SplitN(sig, "|", 2)
	if len(parts) != 2 {
		return sig
	}
	return parts[0] + " -> " + parts[1]
}
