package flushio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/stacc/internal/flushio"
)

type streamOnly struct{ w io.Writer }

func (so streamOnly) Write(p []byte) (int, error) { return so.w.Write(p) }

func Test_NewWriteFlusher(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(io.Discard), "expected shared discard")
	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(nil), "expected nil to discard")

	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	_, err := io.WriteString(wf, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String(), "buffers must not need a flush")

	var sb strings.Builder
	stream := flushio.NewWriteFlusher(streamOnly{&sb})
	_, err = io.WriteString(stream, "world")
	require.NoError(t, err)
	assert.Equal(t, "", sb.String(), "streams must be buffered")
	require.NoError(t, stream.Flush())
	assert.Equal(t, "world", sb.String(), "expected flushed output")

	assert.Equal(t, stream, flushio.NewWriteFlusher(stream), "expected write flushers to pass through")
}

type failFlusher struct{ err error }

func (ff failFlusher) Write(p []byte) (int, error) { return len(p), nil }
func (ff failFlusher) Flush() error { return ff.err }

func Test_WriteFlushers(t *testing.T) {
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers(), "expected discard from nothing")
	assert.Equal(t, flushio.Discard, flushio.WriteFlushers(nil, flushio.Discard), "expected discard from nothing")

	var a, b bytes.Buffer
	one := flushio.NewWriteFlusher(&a)
	assert.Equal(t, one, flushio.WriteFlushers(flushio.Discard, one, nil), "expected a single element to be returned")

	both := flushio.WriteFlushers(one, flushio.NewWriteFlusher(&b))
	_, err := io.WriteString(both, "3\n")
	require.NoError(t, err)
	assert.Equal(t, "3\n", a.String())
	assert.Equal(t, "3\n", b.String())

	var c bytes.Buffer
	all := flushio.WriteFlushers(both, flushio.NewWriteFlusher(&c))
	_, err = io.WriteString(all, "2\n")
	require.NoError(t, err)
	assert.Equal(t, "3\n2\n", a.String())
	assert.Equal(t, "2\n", c.String())

	boom := errors.New("boom")
	failing := flushio.WriteFlushers(failFlusher{boom}, one, failFlusher{errors.New("later")})
	assert.Equal(t, boom, failing.Flush(), "expected first flush error")
}
