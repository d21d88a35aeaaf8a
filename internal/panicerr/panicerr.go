// Package panicerr turns panics into errors, so that one misbehaving step can
// be reported and skipped rather than take the whole process down.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Error describes a recovered panic.
type Error struct {
	Name  string      // what was running, may be empty
	Value interface{} // as passed to panic
	Stack []byte      // goroutine stack at recovery time
}

// Recover calls f, returning its error, or an Error if f panics.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = Error{Name: name, Value: e, Stack: debug.Stack()}
		}
	}()
	return f()
}

func (pe Error) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("paniced: %v", pe.Value)
	}
	return fmt.Sprintf("%v paniced: %v", pe.Name, pe.Value)
}

// Format supports the %+v verb, adding the recovered stack after the message.
func (pe Error) Format(f fmt.State, c rune) {
	mess := pe.Error()
	if c == 'v' && f.Flag('+') {
		mess += "\nPanic stack: " + string(pe.Stack)
	}
	fmt.Fprint(f, mess)
}

// Unwrap returns the panic value, when it was an error.
func (pe Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// Stack returns the stack trace of a recovered panic anywhere in err's chain,
// or "" if there is none.
func Stack(err error) string {
	var pe Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
