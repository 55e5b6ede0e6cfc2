// Package output provides console output formatting and colorization.
package output

import (
	"github.com/willibrandon/gochroma/ansi"
	"github.com/willibrandon/gochroma/colorize"
)

// Color scheme
var (
	SuccessColor = ansi.Green
	ErrorColor   = ansi.Red
	WarningColor = ansi.Yellow
	InfoColor    = ansi.Cyan
	DebugColor   = ansi.White
)

// tint renders s in the given scheme color, honoring the process color
// gate: when color is unavailable the plain text comes back unchanged.
func tint(s string, c ansi.Color) string {
	return colorize.New(s).Foreground(c).Render()
}

// IsColorEnabled reports whether color output is currently enabled
func IsColorEnabled() bool {
	return colorize.Enabled()
}

// DisableColors disables all color output
func DisableColors() {
	colorize.SetOverride(false)
}

// EnableColors enables color output
func EnableColors() {
	colorize.SetOverride(true)
}
