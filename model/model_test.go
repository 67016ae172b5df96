package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperCamel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"close_to", "CloseTo"},
		{"int_eq", "IntEq"},
		{"x", "X"},
		{"int_lin_eq_reif", "IntLinEqReif"},
		{"bool2int", "Bool2int"},
		{"array_BOOL_and", "ArrayBoolAnd"},
		{"a__b", "AB"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, UpperCamel(tt.input))
		})
	}
}

func TestRegistry(t *testing.T) {
	require.Len(t, Registry, 8)

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, td := range Registry {
			assert.False(t, seen[td.Token], "duplicate token %q", td.Token)
			seen[td.Token] = true
		}
	})

	t.Run("derived flags", func(t *testing.T) {
		tests := []struct {
			token      string
			sharing    bool
			collection bool
		}{
			{"int", false, false},
			{"var int", true, false},
			{"array [int] of int", false, true},
			{"array [int] of var int", true, true},
			{"bool", false, false},
			{"var bool", true, false},
			{"array [int] of bool", false, true},
			{"array [int] of var bool", true, true},
		}
		for _, tt := range tests {
			td, ok := Lookup(tt.token)
			require.True(t, ok, tt.token)
			assert.Equal(t, tt.sharing, td.NeedsSharing, "%s NeedsSharing", tt.token)
			assert.Equal(t, tt.collection, td.IsCollection, "%s IsCollection", tt.token)
		}
	})

	t.Run("var and par types are distinct", func(t *testing.T) {
		varBool, _ := Lookup("var bool")
		parBool, _ := Lookup("bool")
		assert.NotEqual(t, varBool, parBool)

		varArr, _ := Lookup("array [int] of var bool")
		parArr, _ := Lookup("array [int] of bool")
		assert.NotEqual(t, varArr, parArr)
	})

	t.Run("exact match only", func(t *testing.T) {
		for _, token := range []string{"", "Int", "var  int", " int", "array [int] of", "float"} {
			_, ok := Lookup(token)
			assert.False(t, ok, "token %q", token)
		}
	})
}

func TestPredicate(t *testing.T) {
	intType, _ := Lookup("int")
	varInts, _ := Lookup("array [int] of var int")
	p := Predicate{
		Name: "int_lin_le",
		Args: []Arg{
			{Type: varInts, Name: "b"},
			{Type: intType, Name: "c"},
		},
	}

	assert.Equal(t, "IntLinLe", p.TypeName())
	assert.Equal(t, 2, p.NbArgs())
	assert.Equal(t, "predicate int_lin_le(array [int] of var int: b, int: c)", p.String())
	assert.Equal(t, "int: c", p.Args[1].String())
}
