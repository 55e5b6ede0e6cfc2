package console

import "sync"

var (
	vtOnce sync.Once
	vtErr  error
)

// EnableVirtualTerminal switches the process console into
// virtual-terminal mode on platforms whose console does not interpret
// ANSI sequences natively. It is idempotent: the system call runs at
// most once per process, and every call returns that first result.
//
// A non-nil error means escape sequences would reach the user as
// garbled bytes; callers should treat it as "color unsupported" rather
// than a failure.
func EnableVirtualTerminal() error {
	vtOnce.Do(func() {
		vtErr = enableVirtualTerminal()
	})
	return vtErr
}
