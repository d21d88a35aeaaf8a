package logio_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/stacc/internal/logio"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errors.New("broken") }

func Test_Logger(t *testing.T) {
	var out bytes.Buffer
	var log logio.Logger
	log.SetOutput(&out)

	log.Printf("INFO", "hello")
	log.Printf("", "bare %v", 42)
	assert.Equal(t, 0, log.ExitCode(), "expected zero exit code before any error")

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "nil errors must not count")

	trace := log.Leveledf("TRACE")
	trace("push %v", 3)

	log.ErrorIf(errors.New("stack underflow"))
	log.Errorf("stdin:%v: unknown word %q\n", 3, "foo")
	assert.Equal(t, 1, log.ExitCode(), "expected error exit code")

	assert.Equal(t, ""+
		"INFO: hello\n"+
		"bare 42\n"+
		"TRACE: push 3\n"+
		"ERROR: stack underflow\n"+
		"ERROR: stdin:3: unknown word \"foo\"\n",
		out.String())
}

func Test_Logger_outputError(t *testing.T) {
	var log logio.Logger
	log.SetOutput(brokenWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected io errors to be retained")

	var quiet logio.Logger
	quiet.Printf("INFO", "nowhere")
	quiet.Errorf("still counts")
	assert.Equal(t, 1, quiet.ExitCode())
}
