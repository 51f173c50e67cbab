package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/jcorbin/linescript/internal/panicerr"
)

// New creates an interpreter with the given options applied over defaults
// that read no input and discard all output.
func New(opts ...Option) *Interp {
	var it Interp
	Options(defaultOptions, Options(opts...)).apply(&it)
	return &it
}

// Run executes every line of input, then renders any diagnostics to the
// output. Per-line problems never fail a run; only output or input stream
// errors, or a done context, will.
func (it *Interp) Run(ctx context.Context) error {
	err := panicerr.Recover("interp", func() error {
		it.run(ctx)
		return nil
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

// RunFile opens the named file and runs it in a new interpreter, which is
// returned so that its store and diagnostics may be inspected. If the file
// cannot be opened, an error satisfying IsOpenError is returned along with a
// nil Interp, and nothing is processed.
func RunFile(ctx context.Context, name string, opts ...Option) (*Interp, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, openError{name, err}
	}
	it := New(Options(opts...), WithInput(f))
	defer it.Close()
	return it, it.Run(ctx)
}

// IsOpenError returns true if err came from failing to open an input file.
func IsOpenError(err error) bool {
	var oe openError
	return errors.As(err, &oe)
}

func WithInput(r io.Reader) Option            { return withInput(r) }
func WithOutput(w io.Writer) Option           { return withOutput(w) }
func WithTee(w io.Writer) Option              { return withTee(w) }
func WithVerbose(verbose bool) Option         { return withVerbose(verbose) }
func WithClock(clock func() time.Time) Option { return withClock(clock) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
