// Package logging provides the leveled, optionally colored console logger
// used for all run output.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/backmassage/pngjpg/internal/config"
	"github.com/backmassage/pngjpg/internal/term"
)

// Logger provides leveled, optionally colored logging to a single writer.
// Every level, ERROR included, goes to the same stream so that failures
// appear in order with the progress lines around them.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	now     func() time.Time
}

// NewLogger configures terminal colors from cfg and returns a Logger
// writing to w, or to stdout when w is nil.
func NewLogger(cfg *config.Config, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	term.Configure(cfg.ColorMode, w)
	return New(w, cfg.Verbose)
}

// New returns a Logger writing to w. Colors follow the current [term] state.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{out: w, verbose: verbose, now: time.Now}
}

// Writer returns the underlying output stream, for callers that print
// unprefixed blocks such as the banner or summary table.
func (l *Logger) Writer() io.Writer { return l.out }

// Verbose reports whether DEBUG lines are emitted.
func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) line(level, color, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	if color != "" {
		_, _ = io.WriteString(l.out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
		return
	}
	_, _ = io.WriteString(l.out, ts+" ["+level+"] "+text+"\n")
}

// Blank writes an empty separator line.
func (l *Logger) Blank() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, "\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Stage logs a stage header at STAGE level (magenta).
func (l *Logger) Stage(format string, args ...interface{}) {
	l.line("STAGE", term.Magenta, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
