// Package lexer splits lines of stack language source into tokens.
//
// The rules are few: whitespace separates tokens; a token that starts with an
// ASCII digit is a number, scanned over digits and '.'; anything else is a
// word, scanned up to the next whitespace. A number ends at the first rune
// that is neither digit nor '.', which then starts the next token, so "3+"
// lexes as the number 3 followed by the word "+".
package lexer

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer produces tokens from a source string, one at a time, front to back.
type Lexer struct {
	src    string
	cursor int
}

// New creates a lexer over the given source.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Reset re-initializes the lexer with new source for reuse.
func (lex *Lexer) Reset(src string) {
	lex.src = src
	lex.cursor = 0
}

// Next returns the next token from the source. Once the source is exhausted,
// every call returns an EOF token.
//
// A malformed number results in a ParseError; the lexer has already moved
// past the offending span, so calling Next again resumes with the following
// token.
func (lex *Lexer) Next() (Token, error) {
	lex.skipSpace()
	if lex.cursor >= len(lex.src) {
		return Token{Kind: EOF, Offset: len(lex.src)}, nil
	}
	if isDigit(lex.src[lex.cursor]) {
		return lex.scanNumber()
	}
	return lex.scanWord(), nil
}

func (lex *Lexer) skipSpace() {
	for lex.cursor < len(lex.src) {
		r, n := utf8.DecodeRuneInString(lex.src[lex.cursor:])
		if !unicode.IsSpace(r) {
			break
		}
		lex.cursor += n
	}
}

func (lex *Lexer) scanNumber() (Token, error) {
	start := lex.cursor
	for lex.cursor < len(lex.src) {
		if ch := lex.src[lex.cursor]; !isDigit(ch) && ch != '.' {
			break
		}
		lex.cursor++
	}

	span := lex.src[start:lex.cursor]
	val, err := strconv.ParseFloat(span, 64)

	// out of range spans still parse, to +Inf
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, ParseError{Span: span, Offset: start}
	}
	return Token{Kind: Number, Offset: start, Text: span, Value: val}, nil
}

func (lex *Lexer) scanWord() Token {
	start := lex.cursor
	for lex.cursor < len(lex.src) {
		r, n := utf8.DecodeRuneInString(lex.src[lex.cursor:])
		if unicode.IsSpace(r) {
			break
		}
		lex.cursor += n
	}
	return Token{Kind: Word, Offset: start, Text: lex.src[start:lex.cursor]}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
