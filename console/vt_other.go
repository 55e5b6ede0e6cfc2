//go:build !windows

package console

// enableVirtualTerminal is a no-op on platforms whose terminals
// interpret ANSI sequences natively.
func enableVirtualTerminal() error {
	return nil
}
