package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jcorbin/linescript/internal/fileinput"
	"github.com/jcorbin/linescript/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type interpTestCases []interpTestCase

func (its interpTestCases) run(t *testing.T) {
	{
		var exclusive []interpTestCase
		for _, itc := range its {
			if itc.exclusive {
				exclusive = append(exclusive, itc)
			}
		}
		if len(exclusive) > 0 {
			its = exclusive
		}
	}
	for _, itc := range its {
		t.Run(itc.name, itc.run)
	}
}

func interpTest(name string) (itc interpTestCase) {
	itc.name = name
	itc.inputName = "test.ls"
	return itc
}

type interpTestCase struct {
	name      string
	inputName string
	input     string
	opts      []func(t *testing.T) Option
	expect    []func(t *testing.T, it *Interp)
	ctx       func(ctx context.Context) context.Context
	wantErr   error

	exclusive bool
}

func (itc interpTestCase) exclusiveTest() interpTestCase {
	itc.exclusive = true
	return itc
}

func (itc interpTestCase) withInput(lines ...string) interpTestCase {
	itc.input = strings.Join(lines, "\n")
	return itc
}

func (itc interpTestCase) withOptions(opts ...Option) interpTestCase {
	for _, opt := range opts {
		opt := opt
		itc.opts = append(itc.opts, func(*testing.T) Option { return opt })
	}
	return itc
}

func (itc interpTestCase) withVerbose() interpTestCase {
	epoch := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return itc.withOptions(
		WithVerbose(true),
		WithClock(func() time.Time { return epoch }),
	)
}

func (itc interpTestCase) withContext(wrap func(ctx context.Context) context.Context) interpTestCase {
	itc.ctx = wrap
	return itc
}

func (itc interpTestCase) expectError(err error) interpTestCase {
	itc.wantErr = err
	return itc
}

func (itc interpTestCase) expectOutput(lines ...string) interpTestCase {
	want := ""
	if len(lines) > 0 {
		want = strings.Join(lines, "\n") + "\n"
	}
	return itc.expectRawOutput(want)
}

func (itc interpTestCase) expectRawOutput(want string) interpTestCase {
	var out strings.Builder
	itc.opts = append(itc.opts, func(*testing.T) Option {
		out.Reset()
		return WithOutput(&out)
	})
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		assert.Equal(t, want, out.String(), "expected output")
	})
	return itc
}

func (itc interpTestCase) expectVar(name string, kind Kind, value string) interpTestCase {
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		v, defined := it.vars.lookup(name)
		if assert.True(t, defined, "expected variable %q to be defined", name) {
			assert.Equal(t, kind, v.Kind, "expected variable %q kind", name)
			assert.Equal(t, value, v.Value.String(), "expected variable %q value", name)
		}
	})
	return itc
}

func (itc interpTestCase) expectNoVar(name string) interpTestCase {
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		_, defined := it.vars.lookup(name)
		assert.False(t, defined, "expected no variable %q", name)
	})
	return itc
}

func (itc interpTestCase) expectVarCount(n int) interpTestCase {
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		assert.Equal(t, n, it.vars.len(), "expected variable count")
	})
	return itc
}

// expectDiag expects a code on a 1-based line number.
func (itc interpTestCase) expectDiag(line int, code Code) interpTestCase {
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		diag, recorded := it.diags.get(line - 1)
		if assert.True(t, recorded, "expected a diagnostic on line %v", line) {
			assert.Equal(t, code, diag.Code, "expected diagnostic code on line %v", line)
		}
	})
	return itc
}

func (itc interpTestCase) expectHint(line int, hint string) interpTestCase {
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		diag, _ := it.diags.get(line - 1)
		assert.Equal(t, hint, diag.Hint, "expected diagnostic hint on line %v", line)
	})
	return itc
}

func (itc interpTestCase) expectDiagCount(n int) interpTestCase {
	itc.expect = append(itc.expect, func(t *testing.T, it *Interp) {
		assert.Equal(t, n, it.diags.len(), "expected diagnostic count")
	})
	return itc
}

func (itc interpTestCase) expectNoDiags() interpTestCase {
	return itc.expectDiagCount(0)
}

func (itc interpTestCase) run(t *testing.T) {
	ctx := context.Background()
	if itc.ctx != nil {
		ctx = itc.ctx(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	it := itc.build(t)
	defer func() {
		if t.Failed() {
			itc.dumpToTest(t, it)
		}
	}()
	defer func() {
		assert.NoError(t, it.Close(), "unexpected close error")
	}()

	if err := it.Run(ctx); itc.wantErr != nil {
		assert.True(t, errors.Is(err, itc.wantErr), "expected error: %v\ngot: %+v", itc.wantErr, err)
	} else {
		require.NoError(t, err, "unexpected run error")
	}

	for _, expect := range itc.expect {
		expect(t, it)
	}
}

func (itc interpTestCase) build(t *testing.T) *Interp {
	opts := []Option{
		WithInput(fileinput.Named(itc.inputName, strings.NewReader(itc.input))),
		WithLogf(t.Logf),
	}
	for _, opt := range itc.opts {
		opts = append(opts, opt(t))
	}
	// tee after any output option, so that output shows up in the test log
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		t.Logf("out: "+mess, args...)
	}}
	opts = append(opts, WithTee(lw))
	return New(opts...)
}

func (itc interpTestCase) dumpToTest(t *testing.T, it *Interp) {
	lw := &logio.Writer{Logf: t.Logf}
	defer lw.Close()
	t.Logf("# Variables")
	it.Dump(lw)
	t.Logf("# Diagnostics")
	it.diags.each(func(diag Diagnostic) error {
		t.Logf("%v %q", diag, diag.Source)
		return nil
	})
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
