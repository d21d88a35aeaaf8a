// Package eval implements a small postfix calculator language.
//
// Source is a sequence of whitespace separated numbers and words. Numbers
// are pushed onto a stack; words pop their operands off it and push any
// results back, so "3 4 +" leaves 7 on the stack. The stack persists from one
// call of Evaluator.Eval to the next, which is what makes an interactive
// session cumulative:
//
//	> 1 2
//	[0] 1
//	[1] 2
//	> + .
//	3
//
// Evaluation is fail-fast: the first problem in a line stops it, leaving the
// stack as it was just before the failing step.
package eval

import (
	"fmt"

	"github.com/jcorbin/stacc/internal/flushio"
	"github.com/jcorbin/stacc/internal/lexer"
)

// Evaluator holds the state of a session: its stack and its word table.
// An Evaluator must only be used from one goroutine at a time.
type Evaluator struct {
	logging

	out   flushio.WriteFlusher
	stack Stack
	words map[string]Word
	lex   lexer.Lexer
}

// New creates an Evaluator with the standard words installed.
func New(opts ...Option) *Evaluator {
	var ev Evaluator
	ev.apply(opts...)
	ev.words = standardWords(ev.out)
	return &ev
}

// Eval evaluates one line of source, left to right.
//
// It returns nil once the line is used up, ErrExit if the exit word ran, or
// the first error encountered: a lexer.ParseError, an UnknownWordError, an
// UnderflowError, or an output error. On error, steps before the failing one
// remain applied; nothing after it is evaluated.
//
// Any printed output has been flushed by the time Eval returns.
func (ev *Evaluator) Eval(text string) (err error) {
	defer func() {
		if ferr := ev.out.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("unable to flush output: %w", ferr)
		}
	}()

	ev.lex.Reset(text)
	for {
		tok, lerr := ev.lex.Next()
		if lerr != nil {
			ev.logf("!", "%v", lerr)
			return lerr
		}
		switch tok.Kind {
		case lexer.EOF:
			return nil
		case lexer.Number:
			ev.stack.Push(tok.Value)
			ev.logf(">", "push %v -- s:%v", tok.Text, ev.stack)
		case lexer.Word:
			if werr := ev.exec(tok); werr != nil {
				return werr
			}
		}
	}
}

func (ev *Evaluator) exec(tok lexer.Token) error {
	word, defined := ev.words[tok.Text]
	if !defined {
		err := UnknownWordError{Name: tok.Text, Offset: tok.Offset}
		ev.logf("!", "%v", err)
		return err
	}
	if err := word.Apply(&ev.stack); err != nil {
		ev.logf("!", "%v %v -- s:%v", tok.Text, err, ev.stack)
		return err
	}
	ev.logf(">", "exec %v -- s:%v", tok.Text, ev.stack)
	return nil
}

// Stack returns a copy of the current stack, bottom first.
func (ev *Evaluator) Stack() []float64 {
	return append(make([]float64, 0, len(ev.stack)), ev.stack...)
}

// Words returns the names of all defined words, sorted.
func (ev *Evaluator) Words() []string {
	return sortedNames(ev.words)
}

// Lookup returns the named word, if defined.
func (ev *Evaluator) Lookup(name string) (Word, bool) {
	word, defined := ev.words[name]
	return word, defined
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
