// Package console probes the terminal capabilities of the current
// process: whether output is attached to an interactive terminal, and
// whether the platform console interprets ANSI escape sequences.
package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Detector reports whether an io.Writer is a terminal (TTY).
// This interface allows mocking in tests.
type Detector interface {
	// IsTerminal returns true if w is a terminal (not piped/redirected)
	IsTerminal(w io.Writer) bool
}

// FDDetector inspects the file descriptor behind *os.File writers.
// Anything that is not an *os.File is reported as not a terminal.
type FDDetector struct{}

// IsTerminal returns true if w is a terminal.
func (FDDetector) IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	// Cygwin/MSYS ptys are not character devices but still render ANSI.
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DefaultDetector is the default detector used in production.
var DefaultDetector Detector = FDDetector{}
