package colorize

import (
	"os"
	"sync"

	"github.com/willibrandon/gochroma/console"
)

// Control decides whether Render emits ANSI escape sequences. It is a
// two-state machine: Unknown until the first query, then Resolved to a
// boolean. Resolution is lazy so that importing this package never
// touches the environment or the platform console by itself.
//
// The precedence, highest first:
//
//  1. Force — an explicit Force call wins over everything, including
//     NO_COLOR, until Reset is called.
//  2. CLICOLOR_FORCE set to anything but "0" forces color on.
//  3. NO_COLOR set to any value forces color off.
//  4. CLICOLOR set to "0" disables color.
//  5. Otherwise: stdout must be an interactive terminal, TERM must not
//     be "dumb", and virtual-terminal processing must be available.
//
// Detection failures count as "color unsupported"; they are never
// surfaced as errors.
type Control struct {
	mu       sync.Mutex
	resolved bool
	enabled  bool

	// Probes, replaceable in tests.
	lookupEnv  func(string) (string, bool)
	isTerminal func() bool
	enableVT   func() error
}

// NewControl returns a Control in the Unknown state wired to the real
// environment, stdout, and platform console.
func NewControl() *Control {
	return &Control{
		lookupEnv: os.LookupEnv,
		isTerminal: func() bool {
			return console.DefaultDetector.IsTerminal(os.Stdout)
		},
		enableVT: console.EnableVirtualTerminal,
	}
}

// Enabled reports whether escape sequences should be emitted, resolving
// the state from the environment on first use.
func (c *Control) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.resolved {
		c.enabled = c.detect()
		c.resolved = true
	}
	return c.enabled
}

// Force resolves the state to the given value, overriding both the
// environment and any earlier resolution. Every Enabled call after
// Force observes the forced value until Reset.
func (c *Control) Force(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = true
	c.enabled = enabled
}

// Reset returns the Control to the Unknown state so the next Enabled
// call re-runs detection. Intended for tests that change the simulated
// environment mid-process.
func (c *Control) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = false
}

// detect computes the environment-derived default. Callers hold c.mu.
func (c *Control) detect() bool {
	if v, ok := c.lookupEnv("CLICOLOR_FORCE"); ok && v != "0" {
		return true
	}
	if _, ok := c.lookupEnv("NO_COLOR"); ok {
		return false
	}
	if v, ok := c.lookupEnv("CLICOLOR"); ok && v == "0" {
		return false
	}
	if term, ok := c.lookupEnv("TERM"); ok && term == "dumb" {
		return false
	}
	if !c.isTerminal() {
		return false
	}
	return c.enableVT() == nil
}

// Default is the process-wide Control consulted by Text.Render.
var Default = NewControl()

// SetOverride forces the Default control to the given value, ignoring
// the environment.
func SetOverride(enabled bool) {
	Default.Force(enabled)
}

// UnsetOverride removes any override and lets the environment decide
// again on the next query.
func UnsetOverride() {
	Default.Reset()
}

// Enabled reports the Default control's decision.
func Enabled() bool {
	return Default.Enabled()
}
