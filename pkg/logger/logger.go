// pkg/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is a wrapper around the standard log.Logger
type Logger struct {
	*log.Logger
	debug bool
}

// New creates a new logger instance writing to stdout with a standard prefix.
func New(prefix string, debug bool) *Logger {
	return NewWithWriter(os.Stdout, prefix, debug)
}

// NewWithWriter is New with an explicit destination, used by tests.
func NewWithWriter(w io.Writer, prefix string, debug bool) *Logger {
	return &Logger{
		Logger: log.New(w, prefix, log.LstdFlags|log.Lshortfile|log.Lmsgprefix),
		debug:  debug,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter(io.Discard, "", false)
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) {
	l.output("INFO: ", fmt.Sprintln(v...))
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output("INFO: ", fmt.Sprintf(format, v...))
}

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) {
	l.output("WARN: ", fmt.Sprintln(v...))
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output("WARN: ", fmt.Sprintf(format, v...))
}

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) {
	l.output("ERROR: ", fmt.Sprintln(v...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output("ERROR: ", fmt.Sprintf(format, v...))
}

// Debug logs only when the logger was built in debug mode.
func (l *Logger) Debug(v ...interface{}) {
	if !l.debug {
		return
	}
	l.output("DEBUG: ", fmt.Sprintln(v...))
}

// Debugf is the formatted variant of Debug.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.output("DEBUG: ", fmt.Sprintf(format, v...))
}

// DebugEnabled reports whether Debug lines are emitted.
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// The level goes into the message rather than through SetPrefix so that
// concurrent callers never race on the shared prefix.
func (l *Logger) output(level, msg string) {
	_ = l.Output(3, level+msg)
}
