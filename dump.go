package main

import (
	"fmt"
	"io"
)

// Dump writes the variable store as typed declarations, one per line sorted
// by name.
func (it *Interp) Dump(w io.Writer) error {
	for _, v := range it.vars.variables() {
		if _, err := fmt.Fprintf(w, "%v: %v = %v;\n", v.Name, v.Kind, v.Value); err != nil {
			return err
		}
	}
	return nil
}
