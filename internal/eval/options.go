package eval

import (
	"io"

	"github.com/jcorbin/stacc/internal/flushio"
)

// Option customizes an Evaluator under construction.
type Option interface{ apply(ev *Evaluator) }

var defaults = []Option{
	withOutput(io.Discard),
}

func (ev *Evaluator) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(ev)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ev)
		}
	}
}

// WithOutput sets where the print word writes; output is discarded by default.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee adds another writer that receives a copy of all printed output.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf enables trace logging of every token evaluated.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack seeds the stack with the given values, bottom first.
func WithStack(values ...float64) Option { return stackOption(values) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ev *Evaluator) {
	ev.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackOption []float64

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (o outputOption) apply(ev *Evaluator) {
	if ev.out != nil {
		ev.out.Flush()
	}
	ev.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(ev *Evaluator) {
	ev.out = flushio.WriteFlushers(ev.out, flushio.NewWriteFlusher(o.Writer))
}

func (values stackOption) apply(ev *Evaluator) {
	ev.stack.Push(values...)
}
