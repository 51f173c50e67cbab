package main

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fragment is the classified result of scanning one statement; it is one of
// Declaration, Call, Empty, or Unreadable.
type Fragment interface{ fragment() }

// Declaration covers both declarations and reassignments, shaped like
// "name [':' type] ['=' value]".
type Declaration struct {
	Name  string
	Type  string
	Value string

	// Annotated is set when a ':' was scanned, even if no type followed it.
	Annotated bool
}

// Call is a single argument call, shaped like "callee '(' arg ')'".
type Call struct {
	Callee string
	Arg    string
}

// Empty is a statement with nothing in it.
type Empty struct{}

// Unreadable is a statement that has content, but fits no statement shape:
// a type or value with no name, or misplaced structural runes.
type Unreadable struct{}

func (Declaration) fragment() {}
func (Call) fragment()        {}
func (Empty) fragment()       {}
func (Unreadable) fragment()  {}

// scanMode names the buffer that ordinary runes accumulate into.
type scanMode uint8

const (
	scanName     scanMode = iota // default, until a structural rune
	scanType                     // after ':'
	scanValue                    // after '='
	scanArg                      // after '('
	scanCallDone                 // after ')'; only whitespace may follow
)

// scanEnd describes why a scan stopped.
type scanEnd uint8

const (
	endTerminator scanEnd = iota // a ';' completed the statement
	endComment                   // a "//" comment consumed the rest of the line
	endLine                      // the line ran out
)

// lineScanner produces statement fragments from a single source line; each
// call to scan consumes runes until a terminator, comment, or end of line.
type lineScanner struct {
	line string
	pos  int

	mode      scanMode
	name      strings.Builder
	typ       strings.Builder
	value     strings.Builder
	arg       strings.Builder
	annotated bool
	garbled   bool
	dirty     bool
	slashes   int
}

func newLineScanner(line string) *lineScanner {
	return &lineScanner{line: line}
}

// done returns true once the scanner has nothing left to scan.
func (sc *lineScanner) done() bool { return sc.pos >= len(sc.line) }

// scan returns the next statement fragment along with how it ended. A fragment
// that ends with endComment or endLine was never terminated; dirty reports
// whether it had any content at all.
func (sc *lineScanner) scan() (frag Fragment, end scanEnd, dirty bool) {
	sc.reset()
	for sc.pos < len(sc.line) {
		r, size := utf8.DecodeRuneInString(sc.line[sc.pos:])
		sc.pos += size

		// a lone '/' is dropped; two in a row start a comment
		if r == '/' {
			if sc.slashes++; sc.slashes == 2 {
				sc.slashes = 0
				sc.pos = len(sc.line)
				return sc.fragment(), endComment, sc.dirty
			}
			continue
		}
		sc.slashes = 0

		switch {
		case unicode.IsSpace(r):
		case r == ';':
			return sc.fragment(), endTerminator, sc.dirty
		default:
			sc.dirty = true
			sc.feed(r)
		}
	}
	return sc.fragment(), endLine, sc.dirty
}

func (sc *lineScanner) reset() {
	sc.mode = scanName
	sc.name.Reset()
	sc.typ.Reset()
	sc.value.Reset()
	sc.arg.Reset()
	sc.annotated = false
	sc.garbled = false
	sc.dirty = false
	sc.slashes = 0
}

// feed transitions on structural runes, and accumulates any other rune into
// the current mode's buffer.
func (sc *lineScanner) feed(r rune) {
	switch sc.mode {
	case scanName:
		switch r {
		case ':':
			sc.mode = scanType
			sc.annotated = true
		case '=':
			sc.mode = scanValue
		case '(':
			sc.mode = scanArg
		case ')':
			sc.garbled = true
		default:
			sc.name.WriteRune(r)
		}

	case scanType:
		switch r {
		case '=':
			sc.mode = scanValue
		case ':', '(', ')':
			sc.garbled = true
		default:
			sc.typ.WriteRune(r)
		}

	case scanValue:
		switch r {
		case ':', '=', '(', ')':
			sc.garbled = true
		default:
			sc.value.WriteRune(r)
		}

	case scanArg:
		switch r {
		case ')':
			sc.mode = scanCallDone
		case ':', '=', '(':
			sc.garbled = true
		default:
			sc.arg.WriteRune(r)
		}

	case scanCallDone:
		sc.garbled = true
	}
}

// fragment classifies everything scanned since the last reset.
func (sc *lineScanner) fragment() Fragment {
	switch {
	case sc.garbled:
		return Unreadable{}
	case sc.mode == scanArg || sc.mode == scanCallDone:
		return Call{Callee: sc.name.String(), Arg: sc.arg.String()}
	case sc.name.Len() > 0:
		return Declaration{
			Name:      sc.name.String(),
			Type:      sc.typ.String(),
			Value:     sc.value.String(),
			Annotated: sc.annotated,
		}
	case sc.typ.Len() > 0 || sc.value.Len() > 0:
		return Unreadable{}
	default:
		return Empty{}
	}
}

var scanEndNames = [...]string{"terminator", "comment", "line"}

func (end scanEnd) String() string {
	if int(end) < len(scanEndNames) {
		return scanEndNames[end]
	}
	return "invalid"
}
