package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/stacc/internal/eval"
)

// dumpStack writes one "[index] value" line per stack entry, bottom first;
// an empty stack writes nothing.
func dumpStack(out io.Writer, stack []float64) error {
	if len(stack) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for i, val := range stack {
		fmt.Fprintf(&buf, "[%v] %v\n", i, eval.FormatNumber(val))
	}
	_, err := buf.WriteTo(out)
	return err
}
