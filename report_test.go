package main

import (
	"context"
	"strings"
	"testing"

	"github.com/jcorbin/linescript/internal/fileinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runString(t *testing.T, name, input string, opts ...Option) *Interp {
	it := New(append(opts, WithInput(fileinput.Named(name, strings.NewReader(input))))...)
	require.NoError(t, it.Run(context.Background()), "unexpected run error")
	require.NoError(t, it.Close())
	return it
}

func TestInterp_Report(t *testing.T) {
	it := runString(t, "report.ls", lines(
		"y: double = 2.5;",
		"x: int = 10;",
		"x: dobule = 1;",
		"print(x);",
	))

	rep := it.Report()
	assert.Equal(t, Report{
		File: "report.ls",
		Variables: []VariableReport{
			{Name: "x", Kind: "int", Value: "10"},
			{Name: "y", Kind: "double", Value: "2.5"},
		},
		Diagnostics: []DiagnosticReport{
			{Line: 3, Code: 4, Message: "No such type.", Source: "x: dobule = 1;", Hint: "double"},
		},
	}, rep)

	var sb strings.Builder
	require.NoError(t, WriteReports(&sb, rep, runString(t, "empty.ls", "").Report()))
	out := sb.String()
	assert.Contains(t, out, "file: report.ls\n")
	assert.Contains(t, out, "hint: double\n")
	assert.Contains(t, out, "---\nfile: empty.ls\nvariables: []\n")

	dec := yaml.NewDecoder(strings.NewReader(out))
	var back Report
	require.NoError(t, dec.Decode(&back), "must decode first report")
	assert.Equal(t, rep, back, "expected report to survive a YAML round trip")
}

func TestInterp_Dump(t *testing.T) {
	it := runString(t, "dump.ls", lines(
		"b: float = 0.5;",
		"a: int = 3;",
		"c: = 1.25;",
	))

	var sb strings.Builder
	require.NoError(t, it.Dump(&sb))
	assert.Equal(t, lines(
		"a: int = 3;",
		"b: float = 0.5;",
		"c: double = 1.25;",
	), sb.String())

	again := runString(t, "again.ls", sb.String())
	assert.Equal(t, it.vars.variables(), again.vars.variables(), "dump recreates the store")
}
