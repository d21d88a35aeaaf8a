package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jcorbin/stacc/internal/eval"
	"github.com/jcorbin/stacc/internal/logio"
)

const historyFile = ".stacc_history"

func main() {
	var (
		expr    string
		trace   bool
		history string
		prompt  string
	)
	flag.StringVar(&expr, "e", "", "evaluate the given line, print the stack, and exit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&history, "history", defaultHistoryPath(), "line editor history file; empty to disable")
	flag.StringVar(&prompt, "prompt", "> ", "interactive prompt")
	flag.Parse()

	var logger logio.Logger
	logger.SetOutput(os.Stderr)

	var opts = []eval.Option{
		eval.WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, eval.WithLogf(logger.Leveledf("TRACE")))
	}
	sh := shell{
		ev:    eval.New(opts...),
		log:   &logger,
		out:   os.Stdout,
		trace: trace,
	}

	switch {
	case flagGiven(flag.CommandLine, "e"):
		exitOnInterrupt()
		os.Exit(sh.runOnce(expr))
	case isTerminal(os.Stdin):
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		os.Exit(sh.runInteractive(history, prompt, sigs))
	default:
		exitOnInterrupt()
		os.Exit(sh.runPiped(os.Stdin))
	}
}

// flagGiven reports whether the named flag was set on the command line, even
// if to its default value.
func flagGiven(fs *flag.FlagSet, name string) (given bool) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// exitOnInterrupt ends the process successfully on SIGINT; an interrupted
// session is a finished one.
func exitOnInterrupt() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		os.Exit(0)
	}()
}
