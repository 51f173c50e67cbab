package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jcorbin/linescript/internal/fileinput"
	"github.com/jcorbin/linescript/internal/flushio"
)

// Interp executes a script line by line against its variable store,
// collecting per-line diagnostics that are rendered once the input ends.
type Interp struct {
	logging

	in      *fileinput.Input
	out     flushio.WriteFlusher
	closers []io.Closer

	verbose bool
	clock   func() time.Time
	start   time.Time

	vars  store
	diags diagLog
}

// Close closes the input stream, and anything else the options opened.
func (it *Interp) Close() (err error) {
	for i := len(it.closers) - 1; i >= 0; i-- {
		if cerr := it.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	it.closers = nil
	return err
}

func (it *Interp) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if it.out != nil {
			if ferr := it.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()
	it.logf("halt error: %v", err)
	panic(haltError{err})
}

func (it *Interp) writeString(s string) {
	if _, err := io.WriteString(it.out, s); err != nil {
		it.halt(err)
	}
}

func (it *Interp) flush() {
	if err := it.out.Flush(); err != nil {
		it.halt(err)
	}
}

// tracef writes a verbose trace event, stamped with the seconds elapsed
// since the run started.
func (it *Interp) tracef(mess string, args ...interface{}) {
	if !it.verbose {
		return
	}
	elapsed := it.clock().Sub(it.start).Seconds()
	it.writeString("[" + strconv.FormatFloat(elapsed, 'g', 6, 64) + "s] " + fmt.Sprintf(mess, args...) + "\n")
}

func (it *Interp) traceVar(event string, v Variable) {
	it.tracef("%v_%v_VARIABLE NAME: %v VALUE: %v", event, v.Kind.tag(), v.Name, v.Value)
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// openError reports an input file that could not be opened.
type openError struct {
	name string
	err  error
}

func (oe openError) Error() string { return fmt.Sprintf("cannot open %v: %v", oe.name, oe.err) }
func (oe openError) Unwrap() error { return oe.err }

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
