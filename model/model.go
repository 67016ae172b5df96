// Package model defines the intermediate representation used between the parser
// and the code generator. The parser populates these types from FlatZinc
// predicate declarations; the generator reads them to emit Rust constraint code.
package model

import "strings"

// Identifier is a validated FlatZinc name matching [A-Za-z][A-Za-z0-9_]*.
// Values are produced by parser.ParseIdentifier.
type Identifier string

func (id Identifier) String() string { return string(id) }

// TypeDescriptor maps one FlatZinc type token to its Rust representation.
type TypeDescriptor struct {
	Token        string // FlatZinc type, e.g. "array [int] of var int"
	TargetType   string // Rust type, e.g. "Vec<Rc<VarInt>>"
	Import       string // Path relative to the crate module, e.g. "var::VarInt"; empty if none
	ConversionFn string // Parser function extracting the value from an expression, e.g. "vec_var_int_from_expr"
	NeedsSharing bool   // True if the target type holds an Rc
	IsCollection bool   // True if the target type is a Vec
}

// Arg is a single predicate parameter.
type Arg struct {
	Type TypeDescriptor
	Name Identifier // Name after fix-up, not necessarily the parsed token
}

func (a Arg) String() string {
	return a.Type.Token + ": " + string(a.Name)
}

// Predicate is a parsed FlatZinc predicate declaration.
type Predicate struct {
	Name Identifier // FlatZinc name, e.g. "int_lin_eq"
	Args []Arg      // Declaration order; also constructor and serializer order
}

// TypeName returns the generated Rust type name, e.g. "IntLinEq".
func (p Predicate) TypeName() string {
	return UpperCamel(string(p.Name))
}

// NbArgs returns the number of declared arguments.
func (p Predicate) NbArgs() int {
	return len(p.Args)
}

// String renders the predicate back to its FlatZinc declaration.
func (p Predicate) String() string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.String()
	}
	return "predicate " + string(p.Name) + "(" + strings.Join(args, ", ") + ")"
}

// GeneratedUnit is one output file produced by the generator.
type GeneratedUnit struct {
	Path    string // Slash-separated, relative to the output directory, e.g. "builtins/int_eq.rs"
	Content string
}
