// Package term holds the ANSI color state shared by the logger and the
// display helpers, and detects whether an output stream is a terminal.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/pngjpg/internal/config"
)

// ANSI sequences. They are empty while colors are off, so concatenating
// them is always safe.
var (
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	NC      string // reset
)

var palette = []struct {
	dst  *string
	code string
}{
	{&Red, "\033[1;91m"},
	{&Green, "\033[1;92m"},
	{&Yellow, "\033[1;93m"},
	{&Blue, "\033[1;94m"},
	{&Cyan, "\033[1;96m"},
	{&Magenta, "\033[1;95m"},
	{&NC, "\033[0m"},
}

// Configure switches colors on or off for output written to out and
// reports which it chose. Called once at startup by [logging.NewLogger].
func Configure(mode config.ColorMode, out io.Writer) bool {
	on := Wants(mode, out)
	for _, p := range palette {
		if on {
			*p.dst = p.code
		} else {
			*p.dst = ""
		}
	}
	return on
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// Wants resolves mode for out. In auto mode colors are used only on a
// terminal, and never when NO_COLOR is set (https://no-color.org) or
// TERM=dumb.
func Wants(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(out)
}

// Paint wraps s in code and a reset. With colors off s is returned as is.
func Paint(code, s string) string {
	if code == "" || !Enabled() {
		return s
	}
	return code + s + NC
}

// IsTerminal reports whether w is a file attached to a TTY, including
// Cygwin/MSYS pseudo terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
