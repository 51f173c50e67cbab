package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"time"

	"github.com/jcorbin/linescript/internal/fileinput"
	"github.com/jcorbin/linescript/internal/flushio"
)

// Option configures an Interp.
type Option interface{ apply(it *Interp) }

var defaultOptions = Options(
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
	withClock(time.Now),
)

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(it *Interp) {
	for _, opt := range opts {
		opt.apply(it)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(it *Interp) {
	it.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type verboseOption bool
type clockOption func() time.Time

func withInput(r io.Reader) inputOption            { return inputOption{r} }
func withOutput(w io.Writer) outputOption          { return outputOption{w} }
func withTee(w io.Writer) teeOption                { return teeOption{w} }
func withVerbose(verbose bool) verboseOption       { return verboseOption(verbose) }
func withClock(clock func() time.Time) clockOption { return clockOption(clock) }

func (i inputOption) apply(it *Interp) {
	it.in = fileinput.New(i.Reader)
	it.closers = append(it.closers, it.in)
}

func (o outputOption) apply(it *Interp) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(it *Interp) {
	it.out = flushio.Tee(it.out, flushio.NewWriteFlusher(o.Writer))
}

func (v verboseOption) apply(it *Interp) {
	it.verbose = bool(v)
}

func (clock clockOption) apply(it *Interp) {
	if clock != nil {
		it.clock = clock
	}
}
