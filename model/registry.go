package model

import (
	"strings"
	"unicode"
)

// Registry is the closed set of FlatZinc types a predicate argument may use.
// Lookup is by exact token equality, so order only matters for reproducibility.
var Registry = []TypeDescriptor{
	newTypeDescriptor("int", "Int", "types::Int", "int_from_expr"),
	newTypeDescriptor("var int", "Rc<VarInt>", "var::VarInt", "var_int_from_expr"),
	newTypeDescriptor("array [int] of int", "Vec<Int>", "types::Int", "vec_int_from_expr"),
	newTypeDescriptor("array [int] of var int", "Vec<Rc<VarInt>>", "var::VarInt", "vec_var_int_from_expr"),
	newTypeDescriptor("bool", "bool", "", "bool_from_expr"),
	newTypeDescriptor("var bool", "Rc<VarBool>", "var::VarBool", "var_bool_from_expr"),
	newTypeDescriptor("array [int] of bool", "Vec<bool>", "", "vec_bool_from_expr"),
	newTypeDescriptor("array [int] of var bool", "Vec<Rc<VarBool>>", "var::VarBool", "vec_var_bool_from_expr"),
}

func newTypeDescriptor(token, target, imp, fn string) TypeDescriptor {
	return TypeDescriptor{
		Token:        token,
		TargetType:   target,
		Import:       imp,
		ConversionFn: fn,
		NeedsSharing: strings.Contains(target, "Rc<"),
		IsCollection: strings.Contains(target, "Vec<"),
	}
}

// Lookup returns the descriptor whose token equals token exactly.
func Lookup(token string) (TypeDescriptor, bool) {
	for _, td := range Registry {
		if td.Token == token {
			return td, true
		}
	}
	return TypeDescriptor{}, false
}

// UpperCamel converts a snake_case name to UpperCamelCase: "int_lin_eq" -> "IntLinEq".
// Each segment has its first letter upper-cased and the rest lower-cased.
func UpperCamel(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, "_") {
		for i, r := range word {
			if i == 0 {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
	}
	return b.String()
}
