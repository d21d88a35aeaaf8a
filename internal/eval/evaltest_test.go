package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type evalTestCases []evalTestCase

func (ets evalTestCases) run(t *testing.T) {
	for _, et := range ets {
		t.Run(et.name, et.run)
	}
}

func evalTest(name string) (et evalTestCase) {
	et.name = name
	return et
}

type evalTestCase struct {
	name    string
	opts    []Option
	lines   []string
	expect  []func(t *testing.T, ev *Evaluator, out string)
	wantErr error
}

func (et evalTestCase) withOptions(opts ...Option) evalTestCase {
	et.opts = append(et.opts, opts...)
	return et
}

func (et evalTestCase) withStack(values ...float64) evalTestCase {
	return et.withOptions(WithStack(values...))
}

// do adds lines to evaluate in order; the first one to fail stops the test
// case, and its error is checked against any expectError.
func (et evalTestCase) do(lines ...string) evalTestCase {
	et.lines = append(et.lines, lines...)
	return et
}

func (et evalTestCase) expectError(err error) evalTestCase {
	et.wantErr = err
	return et
}

func (et evalTestCase) expectStack(values ...float64) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, ev *Evaluator, _ string) {
		if values == nil {
			values = []float64{}
		}
		assert.Equal(t, values, ev.Stack(), "expected stack values")
	})
	return et
}

func (et evalTestCase) expectOutput(lines ...string) evalTestCase {
	et.expect = append(et.expect, func(t *testing.T, _ *Evaluator, out string) {
		var want string
		if len(lines) > 0 {
			want = strings.Join(lines, "\n") + "\n"
		}
		assert.Equal(t, want, out, "expected output")
	})
	return et
}

func (et evalTestCase) run(t *testing.T) {
	var out bytes.Buffer
	opts := append([]Option{WithOutput(&out), WithLogf(t.Logf)}, et.opts...)
	ev := New(opts...)

	var err error
	for _, line := range et.lines {
		if err = ev.Eval(line); err != nil {
			break
		}
	}
	if et.wantErr != nil {
		assert.Equal(t, et.wantErr, err, "expected eval error")
	} else {
		assert.NoError(t, err, "unexpected eval error")
	}

	for _, expect := range et.expect {
		expect(t, ev, out.String())
	}
}
