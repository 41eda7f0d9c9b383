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
}

// Option configures a Logger created by New.
type Option func(*logger)

// WithDebug enables output from Debugf.
func WithDebug(enabled bool) Option {
	return func(l *logger) {
		l.debug = enabled
	}
}

// WithOutput sets the writer that log lines are written to, which
// defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(l *logger) {
		l.out = w
	}
}

func New(opts ...Option) Logger {
	l := &logger{out: os.Stderr}
	for _, opt := range opts {
		opt(l)
	}
	return l
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

// Fatal logs str and exits the process.
func (l *logger) Fatal(str string) {
	fmt.Fprintf(l.out, "[FATAL]\t%s\n", str)
	os.Exit(1)
}
