package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	var st store

	_, defined := st.lookup("x")
	assert.False(t, defined, "empty store has no variables")
	_, defined = st.assign("x", "1")
	assert.False(t, defined, "cannot assign an undeclared variable")

	st.declare("x", decodeLiteral(Integer, "0"))
	v, defined := st.lookup("x")
	require.True(t, defined, "zero valued variables are still defined")
	assert.Equal(t, "0", v.Value.String())

	v, defined = st.assign("x", "12")
	require.True(t, defined)
	assert.Equal(t, Integer, v.Kind, "assignment keeps kind")
	assert.Equal(t, "12", v.Value.String())

	st.declare("x", decodeLiteral(Float64, "0.5"))
	st.declare("a", decodeLiteral(Float32, "1"))
	assert.Equal(t, 2, st.len(), "redeclaration does not add a variable")
	assert.Equal(t, []string{"a", "x"}, st.names())
	assert.Equal(t, []Variable{
		{"a", float32Value(1)},
		{"x", float64Value(0.5)},
	}, st.variables())
}

func TestKinds(t *testing.T) {
	for keyword, want := range map[string]Kind{
		"int":    Integer,
		"float":  Float32,
		"double": Float64,
	} {
		kind, ok := lookupKind(keyword)
		assert.True(t, ok, "expected %q to be a type keyword", keyword)
		assert.Equal(t, want, kind)
		assert.Equal(t, keyword, kind.String())
		assert.True(t, isReserved(keyword), "expected %q to be reserved", keyword)
	}
	_, ok := lookupKind("integer")
	assert.False(t, ok)
	assert.False(t, isReserved("print"), "builtin names are not reserved")
	assert.Equal(t, []string{"double", "float", "int"}, reservedWords())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "<invalid>", Value{}.String())
}
