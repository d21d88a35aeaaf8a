// Package flushio provides flush-able output streams, so that an evaluator
// can buffer what it prints and hand it over in one piece once a line is done.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher returns w as a WriteFlusher:
// - if w already is one, it is returned as-is
// - io.Discard and in-memory buffers, like bytes.Buffer and strings.Builder,
//   get a noop Flush
// - anything else is wrapped in a bufio.Writer
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	type buffer interface {
		io.Writer
		Len() int
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }

// WriteFlushers combines any number of WriteFlusher-s into one that writes
// into and flushes all of them, in order. Nil and Discard elements are
// dropped, and nested combinations are flattened.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			if wf != Discard {
				all = append(all, wf)
			}
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (all tee) Write(p []byte) (n int, err error) {
	for _, wf := range all {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (all tee) Flush() (err error) {
	for _, wf := range all {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
