package eval

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/jcorbin/stacc/internal/flushio"
)

// Word is a built-in operation. Apply runs it against the stack, either
// completing entirely or failing without having changed the stack.
type Word interface {
	Apply(st *Stack) error
}

//// Arithmetic

// binaryWord pops n1 (the top) and n2 (below it), then pushes op(n2, n1).
type binaryWord struct {
	name string
	op   func(n2, n1 float64) float64
}

func (w binaryWord) Apply(st *Stack) error {
	if err := st.Need(w.name, 2); err != nil {
		return err
	}
	n1 := st.Pop()
	n2 := st.Pop()
	st.Push(w.op(n2, n1))
	return nil
}

// Symbol   Name       Function
//    +     add        pop top 2 elements of stack, add, push
//    -     subtract   pop top 2 elements of stack, subtract top from second, push
//    *     multiply   pop top 2 elements of stack, multiply, push
//    /     divide     pop top 2 elements of stack, divide second by top, push
var (
	add = binaryWord{"+", func(n2, n1 float64) float64 { return n2 + n1 }}
	sub = binaryWord{"-", func(n2, n1 float64) float64 { return n2 - n1 }}
	mul = binaryWord{"*", func(n2, n1 float64) float64 { return n1 * n2 }}
	div = binaryWord{"/", func(n2, n1 float64) float64 { return n2 / n1 }}
)

// Division by zero is not an error; it results in an infinity, or NaN for
// 0 0 /, just like any other floating point division.

//// Input/Output

// Symbol   Name    Function
//    .     print   pop top of stack, write it to output followed by a newline
//
// The value is only popped once it has made it through to the output, so a
// failed print leaves it on the stack.
type printWord struct{ out flushio.WriteFlusher }

func (w printWord) Apply(st *Stack) error {
	if err := st.Need(".", 1); err != nil {
		return err
	}
	if _, err := io.WriteString(w.out, FormatNumber(st.Peek())+"\n"); err != nil {
		return fmt.Errorf("unable to print: %w", err)
	}
	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("unable to print: %w", err)
	}
	st.Pop()
	return nil
}

//// Session

// Name   Function
// exit   stop evaluating, asking the caller to end the session
type exitWord struct{}

func (exitWord) Apply(*Stack) error { return ErrExit }

func standardWords(out flushio.WriteFlusher) map[string]Word {
	return map[string]Word{
		add.name: add,
		sub.name: sub,
		mul.name: mul,
		div.name: div,
		".":      printWord{out},
		"exit":   exitWord{},
	}
}

func sortedNames(words map[string]Word) []string {
	names := make([]string, 0, len(words))
	for name := range words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatNumber renders a value the way the print word does: the shortest
// decimal form that reads back the same, never in exponent notation, with
// infinities as "inf" and "-inf".
func FormatNumber(val float64) string {
	switch {
	case math.IsInf(val, 1):
		return "inf"
	case math.IsInf(val, -1):
		return "-inf"
	case math.IsNaN(val):
		return "NaN"
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}
