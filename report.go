package main

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Report summarizes the outcome of a run.
type Report struct {
	File        string             `yaml:"file"`
	Variables   []VariableReport   `yaml:"variables"`
	Diagnostics []DiagnosticReport `yaml:"diagnostics,omitempty"`
}

// VariableReport describes a variable's final state.
type VariableReport struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// DiagnosticReport describes a diagnostic; Line is 1-based.
type DiagnosticReport struct {
	Line    int    `yaml:"line"`
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
	Source  string `yaml:"source"`
	Hint    string `yaml:"hint,omitempty"`
}

// Report returns a summary of the last run's store and diagnostics.
func (it *Interp) Report() Report {
	rep := Report{
		File:      it.in.Name,
		Variables: []VariableReport{},
	}
	for _, v := range it.vars.variables() {
		rep.Variables = append(rep.Variables, VariableReport{
			Name:  v.Name,
			Kind:  v.Kind.String(),
			Value: v.Value.String(),
		})
	}
	for _, diag := range it.diags.diagnostics() {
		rep.Diagnostics = append(rep.Diagnostics, DiagnosticReport{
			Line:    diag.Line + 1,
			Code:    int(diag.Code),
			Message: diag.Code.Message(),
			Source:  diag.Source,
			Hint:    diag.Hint,
		})
	}
	return rep
}

// WriteReports writes reports as a YAML stream, one document each.
func WriteReports(w io.Writer, reports ...Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, rep := range reports {
		if err := enc.Encode(rep); err != nil {
			return err
		}
	}
	return enc.Close()
}
