package main

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/jcorbin/linescript/internal/fileinput"
)

var fragmentDumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (it *Interp) run(ctx context.Context) {
	it.start = it.clock()
	it.vars = store{}
	it.diags = diagLog{}

	it.tracef("FILE_OPENED NAME: %v", it.in.Name)
	for it.in.Next() {
		if err := ctx.Err(); err != nil {
			it.halt(err)
		}
		it.execLine(it.in.Last)
	}
	if err := it.in.Err(); err != nil {
		it.halt(fmt.Errorf("read %v: %w", it.in.Name, err))
	}

	if err := it.diags.render(it.out); err != nil {
		it.halt(err)
	}
	it.flush()
}

// execLine executes every terminated statement on the line as soon as it is
// scanned, raising a terminator diagnostic for any unterminated remainder.
func (it *Interp) execLine(line fileinput.Line) {
	index := line.Line - 1
	for sc := newLineScanner(line.Text); !sc.done(); {
		frag, end, dirty := sc.scan()
		if it.logfn != nil {
			it.logf("scan %v end:%v dirty:%v %v", line.Location, end, dirty, fragmentDumper.Sdump(frag))
		}
		if end == endTerminator {
			it.raise(index, line.Text, it.exec(frag))
		} else if dirty {
			// raised even after earlier statements on the line ran, since
			// the line still lacks its trailing terminator
			it.raise(index, line.Text, CodeUnterminated)
		}
	}
}

// raise records any diagnostic for a line; errors that are not a Code halt
// the run.
func (it *Interp) raise(index int, source string, err error) {
	if err == nil {
		return
	}
	diag, ok := diagnosticFor(index, source, err)
	if !ok {
		it.halt(err)
	}
	it.logf("raise %v", diag)
	it.diags.record(diag)
	it.tracef("DECL_ERROR_CODE LINE: %v CODE: %v", index+1, int(diag.Code))
}

func (it *Interp) exec(frag Fragment) error {
	switch frag := frag.(type) {
	case Declaration:
		return it.declare(frag)
	case Call:
		return it.call(frag)
	case Unreadable:
		return CodeUnreadable
	case Empty:
		return nil
	default:
		return fmt.Errorf("unsupported fragment type %T", frag)
	}
}

func (it *Interp) declare(decl Declaration) error {
	if isReserved(decl.Name) {
		return CodeReservedKeyword
	}

	if decl.Type != "" {
		kind, ok := lookupKind(decl.Type)
		if !ok {
			return withHint(CodeNoSuchType, closest(decl.Type, reservedWords()))
		}
		it.traceVar("NEW", it.vars.declare(decl.Name, decodeLiteral(kind, decl.Value)))
		return nil
	}

	if decl.Value != "" {
		if v, defined := it.vars.assign(decl.Name, decl.Value); defined {
			it.traceVar("ALTER", v)
			return nil
		}
		if !decl.Annotated {
			return CodeUninitialized
		}
		// an empty annotation declares the widest kind
		it.traceVar("NEW", it.vars.declare(decl.Name, decodeLiteral(Float64, decl.Value)))
		return nil
	}

	return CodeNoTypeOrValue
}

// builtins are the callable names; calls to any other name do nothing.
var builtins = map[string]func(it *Interp, arg string) error{
	"print": (*Interp).print,
}

func (it *Interp) call(call Call) error {
	if call.Callee == "" {
		return nil
	}
	if call.Arg == "" {
		return CodeNoArguments
	}
	if fn, defined := builtins[call.Callee]; defined {
		return fn(it, call.Arg)
	}
	return nil
}

func (it *Interp) print(name string) error {
	v, defined := it.vars.lookup(name)
	if !defined {
		return withHint(CodeUndeclared, closest(name, it.vars.names()))
	}
	it.writeString(v.Value.String() + "\n")
	return nil
}
