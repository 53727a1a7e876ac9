package log

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	out   io.Writer
	debug bool
	exit  func(int)
}

// New returns a Logger writing to stdout with debug output enabled.
func New() Logger {
	return NewWriter(os.Stdout, true)
}

// NewWriter returns a Logger writing to w. Debugf is a no-op unless debug is set.
func NewWriter(w io.Writer, debug bool) Logger {
	return &logger{out: w, debug: debug, exit: os.Exit}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	fmt.Fprintf(l.out, "[DEBUG]\t"+format+"\n", args...)
}

// Fatal logs str and exits the process with status 1.
func (l *logger) Fatal(str string) {
	fmt.Fprintf(l.out, "[FATAL]\t%s\n", str)
	l.exit(1)
}
