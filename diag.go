package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/btree"
)

// Code identifies a recoverable, line-local condition.
type Code int

const (
	CodeUnterminated    Code = -2 // statement never reached its terminator
	CodeUnreadable      Code = -1 // content that fits no statement shape
	CodeNoTypeOrValue   Code = 0  // a bare name
	CodeUninitialized   Code = 1  // assignment to a name never declared
	CodeNoArguments     Code = 2  // call without an argument
	CodeUndeclared      Code = 3  // call argument names no variable
	CodeNoSuchType      Code = 4  // unrecognized type keyword
	CodeReservedKeyword Code = 5  // name collides with a reserved word
)

var codeMessages = map[Code]string{
	CodeUnterminated:    "Missing statement terminator.",
	CodeUnreadable:      "Unreadable code.",
	CodeNoTypeOrValue:   "No type or value assigned.",
	CodeUninitialized:   "Variable uninitialized.",
	CodeNoArguments:     "This function needs arguments.",
	CodeUndeclared:      "Variable undeclared.",
	CodeNoSuchType:      "No such type.",
	CodeReservedKeyword: "Reserved keyword.",
}

// Message returns the human readable message for the code.
func (code Code) Message() string {
	if mess, ok := codeMessages[code]; ok {
		return mess
	}
	return "No such error code."
}

func (code Code) Error() string {
	return fmt.Sprintf("error [%v]: %v", int(code), code.Message())
}

// hintError attaches a suggestion, like a closest matching name, to a Code.
type hintError struct {
	Code
	hint string
}

func (he hintError) Error() string {
	if he.hint == "" {
		return he.Code.Error()
	}
	return fmt.Sprintf("%v (did you mean %q?)", he.Code.Error(), he.hint)
}

func (he hintError) Unwrap() error { return he.Code }

func withHint(code Code, hint string) error {
	if hint == "" {
		return code
	}
	return hintError{code, hint}
}

// Diagnostic records the Code raised by a source line.
type Diagnostic struct {
	Line   int // 0-based line index
	Code   Code
	Source string // source line text
	Hint   string
}

func diagnosticFor(line int, source string, err error) (Diagnostic, bool) {
	var code Code
	if !errors.As(err, &code) {
		return Diagnostic{}, false
	}
	diag := Diagnostic{Line: line, Code: code, Source: source}
	var he hintError
	if errors.As(err, &he) {
		diag.Hint = he.hint
	}
	return diag, true
}

func (diag Diagnostic) Less(than btree.Item) bool {
	return diag.Line < than.(Diagnostic).Line
}

// render writes the diagnostic in its two line form, followed by a blank line.
func (diag Diagnostic) render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Error [%v]: %v\n    line %v: %v\n\n",
		int(diag.Code), diag.Code.Message(), diag.Line+1, diag.Source)
	return err
}

func (diag Diagnostic) String() string {
	return "line " + strconv.Itoa(diag.Line+1) + ": " + diag.Code.Error()
}

// diagLog holds at most one Diagnostic per line, ordered by line; recording
// a line again replaces the earlier one.
type diagLog struct {
	tree *btree.BTree
}

const diagLogDegree = 4

func (dl *diagLog) record(diag Diagnostic) {
	if dl.tree == nil {
		dl.tree = btree.New(diagLogDegree)
	}
	dl.tree.ReplaceOrInsert(diag)
}

func (dl *diagLog) len() int {
	if dl.tree == nil {
		return 0
	}
	return dl.tree.Len()
}

func (dl *diagLog) get(line int) (Diagnostic, bool) {
	if dl.tree == nil {
		return Diagnostic{}, false
	}
	item := dl.tree.Get(Diagnostic{Line: line})
	if item == nil {
		return Diagnostic{}, false
	}
	return item.(Diagnostic), true
}

// each calls f with every diagnostic in ascending line order, stopping at
// the first error.
func (dl *diagLog) each(f func(diag Diagnostic) error) (err error) {
	if dl.tree == nil {
		return nil
	}
	dl.tree.Ascend(func(item btree.Item) bool {
		err = f(item.(Diagnostic))
		return err == nil
	})
	return err
}

func (dl *diagLog) diagnostics() []Diagnostic {
	diags := make([]Diagnostic, 0, dl.len())
	dl.each(func(diag Diagnostic) error {
		diags = append(diags, diag)
		return nil
	})
	return diags
}

func (dl *diagLog) render(w io.Writer) error {
	return dl.each(func(diag Diagnostic) error {
		return diag.render(w)
	})
}
