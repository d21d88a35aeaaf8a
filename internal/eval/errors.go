package eval

import (
	"errors"
	"fmt"
)

// ErrExit is returned by Eval when the exit word runs. It is not a failure:
// the caller decides how to end the session.
var ErrExit = errors.New("exit requested")

// UnderflowError reports a word that needed more stack values than there
// were.
type UnderflowError struct {
	Word      string
	Needed    int
	Available int
}

// UnknownWordError reports a word that is not in the word table.
type UnknownWordError struct {
	Name   string
	Offset int
}

func (err UnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: %q needs %v values, have %v", err.Word, err.Needed, err.Available)
}

func (err UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q at offset %v", err.Name, err.Offset)
}
