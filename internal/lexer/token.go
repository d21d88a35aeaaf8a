package lexer

import (
	"fmt"
	"strconv"
)

// Kind identifies what sort of token the lexer produced.
type Kind uint8

const (
	// EOF marks the end of input; it is never acted upon.
	EOF Kind = iota
	// Number tokens carry a parsed float64 Value.
	Number
	// Word tokens name a built-in operation.
	Word
)

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case Word:
		return "Word"
	}
	return fmt.Sprintf("Kind(%d)", uint8(kind))
}

// Token is a lexical unit pointing back into its source text.
type Token struct {
	Kind   Kind
	Offset int     // byte offset of the first character
	Text   string  // source span, verbatim
	Value  float64 // only meaningful for Number tokens
}

func (tok Token) String() string {
	switch tok.Kind {
	case EOF:
		return "EOF"
	case Number:
		return "Number(" + strconv.FormatFloat(tok.Value, 'g', -1, 64) + ")"
	}
	return fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
}

// ParseError reports a numeral-looking span that is not a valid number, such
// as "1.2.3".
type ParseError struct {
	Span   string
	Offset int
}

func (err ParseError) Error() string {
	return fmt.Sprintf("invalid number %q at offset %v", err.Span, err.Offset)
}
