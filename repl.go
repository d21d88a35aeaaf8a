package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jcorbin/stacc/internal/eval"
	"github.com/jcorbin/stacc/internal/lineinput"
	"github.com/jcorbin/stacc/internal/logio"
	"github.com/jcorbin/stacc/internal/panicerr"
)

var errInterrupted = errors.New("interrupted")

// lineSource supplies lines of input to a session. Along with each line, it
// may describe where the line came from, for use in error reports.
type lineSource interface {
	readLine(prompt string) (line, loc string, err error)
}

// shell holds what every kind of session shares.
type shell struct {
	ev  *eval.Evaluator
	log *logio.Logger
	out io.Writer

	// trace also logs the stack of any panic recovered from a line
	trace bool
}

type session struct {
	shell
	lines  lineSource
	prompt string

	// interactive sessions show the stack before every prompt, others only
	// once all input is done
	interactive bool

	// interrupts received while a line is evaluating end the session once
	// that line is done
	interrupts <-chan os.Signal
}

// run reads and evaluates lines until input runs out, the user interrupts,
// or the exit word runs. Failed lines are reported and skipped.
func (s *session) run() error {
	for {
		if s.interactive {
			if err := dumpStack(s.out, s.ev.Stack()); err != nil {
				return err
			}
		}
		line, loc, err := s.lines.readLine(s.prompt)
		if err == io.EOF || errors.Is(err, errInterrupted) {
			break
		} else if err != nil {
			return err
		}
		if s.eval(line, loc) || s.interrupted() {
			break
		}
	}
	if !s.interactive {
		return dumpStack(s.out, s.ev.Stack())
	}
	return nil
}

func (s *session) interrupted() bool {
	select {
	case <-s.interrupts:
		return true
	default:
		return false
	}
}

// eval evaluates one line, returning true if it asked to end the session.
func (s *session) eval(line, loc string) (exit bool) {
	err := panicerr.Recover("eval", func() error {
		return s.ev.Eval(line)
	})
	switch {
	case err == nil:
		return false
	case errors.Is(err, eval.ErrExit):
		return true
	case loc != "":
		s.log.Errorf("%v: %v", loc, err)
	default:
		s.log.Errorf("%v", err)
	}
	if stack := panicerr.Stack(err); s.trace && stack != "" {
		s.log.Printf("TRACE", "panic stack: %s", stack)
	}
	return false
}

func (sh shell) runOnce(expr string) int {
	return sh.runPiped(lineinput.NamedReader("-e", strings.NewReader(expr)))
}

// runPiped evaluates every line from r, exiting non-zero if any of them
// failed.
func (sh shell) runPiped(r io.Reader) int {
	s := session{
		shell: sh,
		lines: inputSource{&lineinput.Input{Queue: []io.Reader{r}}},
	}
	sh.log.ErrorIf(s.run())
	return sh.log.ExitCode()
}

// runInteractive reads lines through a line editor. Ctrl-C at the prompt ends
// the session; SIGINT during evaluation, sent to interrupts, ends it once the
// line is done, so that history is saved and the terminal restored.
func (sh shell) runInteractive(histPath, prompt string, interrupts <-chan os.Signal) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeWords(sh.ev.Words()))

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := session{
		shell:       sh,
		lines:       linerSource{ln},
		prompt:      prompt,
		interactive: true,
		interrupts:  interrupts,
	}
	if err := s.run(); err != nil {
		sh.log.ErrorIf(err)
		return sh.log.ExitCode()
	}
	return 0
}

type linerSource struct{ *liner.State }

func (ls linerSource) readLine(prompt string) (string, string, error) {
	line, err := ls.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", "", errInterrupted
	} else if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(line) != "" {
		ls.AppendHistory(line)
	}
	return line, "", nil
}

type inputSource struct{ *lineinput.Input }

func (is inputSource) readLine(string) (string, string, error) {
	line, err := is.ReadLine()
	if err != nil {
		return "", "", err
	}
	return line, is.Last.String(), nil
}

// completeWords completes the last word of a line against the given names.
func completeWords(names []string) liner.Completer {
	return func(line string) (completions []string) {
		i := strings.LastIndexFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t'
		})
		head, partial := line[:i+1], line[i+1:]
		for _, name := range names {
			if strings.HasPrefix(name, partial) {
				completions = append(completions, head+name)
			}
		}
		return completions
	}
}
