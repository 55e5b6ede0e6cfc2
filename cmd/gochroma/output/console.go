// cmd/gochroma/output/console.go
package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/mattn/go-colorable"
)

// Verbosity levels
type Verbosity int

const (
	// VerbosityQuiet shows errors only
	VerbosityQuiet Verbosity = iota
	// VerbosityNormal shows errors, warnings, and key operations (default)
	VerbosityNormal
	// VerbosityDetailed shows above + progress details
	VerbosityDetailed
	// VerbosityDiagnostic shows above + debug output
	VerbosityDiagnostic
)

// Console provides output abstraction
type Console struct {
	out       io.Writer
	err       io.Writer
	verbosity Verbosity
	mu        sync.Mutex
}

// NewConsole creates a new console
func NewConsole(out, err io.Writer, verbosity Verbosity) *Console {
	return &Console{
		out:       out,
		err:       err,
		verbosity: verbosity,
	}
}

// DefaultConsole creates a console with stdout/stderr and normal
// verbosity. The writers come from go-colorable so escape sequences
// render on legacy Windows consoles too.
func DefaultConsole() *Console {
	return NewConsole(colorable.NewColorableStdout(), colorable.NewColorableStderr(), VerbosityNormal)
}

// SetVerbosity sets the verbosity level
func (c *Console) SetVerbosity(v Verbosity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verbosity = v
}

// GetVerbosity returns the current verbosity level
func (c *Console) GetVerbosity() Verbosity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verbosity
}

// Print writes to output
func (c *Console) Print(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprint(c.out, a...)
}

// Println writes line to output
func (c *Console) Println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output
func (c *Console) Printf(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, a...)
}

// Success writes success message (green)
func (c *Console) Success(format string, a ...any) {
	if c.GetVerbosity() >= VerbosityNormal {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintln(c.out, tint(fmt.Sprintf(format, a...), SuccessColor))
	}
}

// Error writes error message (red) to stderr
func (c *Console) Error(format string, a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.err, tint("Error: "+fmt.Sprintf(format, a...), ErrorColor))
}

// Warning writes warning message (yellow)
func (c *Console) Warning(format string, a ...any) {
	if c.GetVerbosity() >= VerbosityNormal {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintln(c.out, tint("Warning: "+fmt.Sprintf(format, a...), WarningColor))
	}
}

// Info writes info message (cyan)
func (c *Console) Info(format string, a ...any) {
	if c.GetVerbosity() >= VerbosityNormal {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintln(c.out, tint(fmt.Sprintf(format, a...), InfoColor))
	}
}

// Debug writes debug message (white)
func (c *Console) Debug(format string, a ...any) {
	if c.GetVerbosity() >= VerbosityDiagnostic {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintln(c.out, tint("[DEBUG] "+fmt.Sprintf(format, a...), DebugColor))
	}
}

// Detail writes detailed message
func (c *Console) Detail(format string, a ...any) {
	if c.GetVerbosity() >= VerbosityDetailed {
		c.mu.Lock()
		defer c.mu.Unlock()
		fmt.Fprintf(c.out, format+"\n", a...)
	}
}
