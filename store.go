package main

import (
	"sort"
	"strconv"
)

// Kind is the fixed primitive numeric category of a variable.
type Kind uint8

const (
	Integer Kind = iota + 1
	Float32
	Float64
)

// kindKeywords are the type keywords, which are also the reserved words.
var kindKeywords = map[string]Kind{
	"int":    Integer,
	"float":  Float32,
	"double": Float64,
}

func lookupKind(keyword string) (Kind, bool) {
	kind, ok := kindKeywords[keyword]
	return kind, ok
}

func isReserved(name string) bool {
	_, reserved := kindKeywords[name]
	return reserved
}

func reservedWords() []string {
	words := make([]string, 0, len(kindKeywords))
	for word := range kindKeywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

func (k Kind) String() string {
	switch k {
	case Integer:
		return "int"
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// tag is the upper case kind name used in trace events.
func (k Kind) tag() string {
	switch k {
	case Integer:
		return "INT"
	case Float32:
		return "FLOAT"
	case Float64:
		return "DOUBLE"
	default:
		return "UNKNOWN"
	}
}

// Value is a decoded literal of some Kind.
type Value struct {
	Kind Kind

	i   int
	f32 float32
	f64 float64
}

func intValue(i int) Value         { return Value{Kind: Integer, i: i} }
func float32Value(f float32) Value { return Value{Kind: Float32, f32: f} }
func float64Value(f float64) Value { return Value{Kind: Float64, f64: f} }

// String renders the value in its kind's natural textual form; floats are
// limited to 6 significant digits.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return strconv.Itoa(v.i)
	case Float32:
		return strconv.FormatFloat(float64(v.f32), 'g', floatDigits, 32)
	case Float64:
		return strconv.FormatFloat(v.f64, 'g', floatDigits, 64)
	default:
		return "<invalid>"
	}
}

const floatDigits = 6

// Variable is a named, kinded value held by a store.
type Variable struct {
	Name string
	Value
}

// store holds the variables of a single run. A name maps to at most one
// variable; only a typed declaration may change a variable's kind.
type store struct {
	vars map[string]*Variable
}

func (st *store) lookup(name string) (Variable, bool) {
	if v, defined := st.vars[name]; defined {
		return *v, true
	}
	return Variable{}, false
}

// declare creates the named variable, or replaces both kind and value of an
// existing one.
func (st *store) declare(name string, val Value) Variable {
	if st.vars == nil {
		st.vars = make(map[string]*Variable)
	}
	v := &Variable{Name: name, Value: val}
	st.vars[name] = v
	return *v
}

// assign decodes text as the existing variable's kind and replaces its value.
// Returns false if no such variable exists.
func (st *store) assign(name, text string) (Variable, bool) {
	v, defined := st.vars[name]
	if !defined {
		return Variable{}, false
	}
	v.Value = decodeLiteral(v.Kind, text)
	return *v, true
}

func (st *store) len() int { return len(st.vars) }

func (st *store) names() []string {
	names := make([]string, 0, len(st.vars))
	for name := range st.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// variables returns all variables sorted by name.
func (st *store) variables() []Variable {
	names := st.names()
	vars := make([]Variable, len(names))
	for i, name := range names {
		vars[i] = *st.vars[name]
	}
	return vars
}
