// Package colorize pairs text with colors and style attributes and
// renders it as ANSI-escaped terminal output.
//
// A Text is an immutable value; every builder method returns an updated
// copy, so values can be shared and chained freely:
//
//	fmt.Println(colorize.New("ready").Green().Bold())
//	fmt.Println(colorize.New("warn").Yellow().OnBlack().Underline())
//
// Render consults the process-wide Control (see control.go) and falls
// back to the plain payload when color output is unavailable.
package colorize

import (
	"strings"

	"github.com/willibrandon/gochroma/ansi"
)

// reset is the SGR sequence restoring default rendition.
const reset = "\x1b[0m"

// Text pairs a payload with an optional foreground color, an optional
// background color, and a set of style attributes. The zero Text is an
// empty plain string.
type Text struct {
	payload string
	fg      ansi.Color
	bg      ansi.Color
	style   ansi.Style
}

// New wraps s as a plain Text with no color or style.
func New(s string) Text {
	return Text{payload: s}
}

// Foreground returns a copy of t with the foreground color replaced.
func (t Text) Foreground(c ansi.Color) Text {
	t.fg = c
	return t
}

// Background returns a copy of t with the background color replaced.
func (t Text) Background(c ansi.Color) Text {
	t.bg = c
	return t
}

// Styled returns a copy of t with the given style attributes added to
// the ones already set.
func (t Text) Styled(s ansi.Style) Text {
	t.style = t.style.With(s)
	return t
}

// Clear returns a plain copy of t: same payload, no color, no style.
func (t Text) Clear() Text {
	return Text{payload: t.payload}
}

// Plain returns the payload without any escape sequences.
func (t Text) Plain() string {
	return t.payload
}

// IsPlain reports whether t has no color and no style set.
func (t Text) IsPlain() bool {
	return t.fg.IsZero() && t.bg.IsZero() && t.style == 0
}

// ForegroundColor returns the foreground color; the zero Color if unset.
func (t Text) ForegroundColor() ansi.Color {
	return t.fg
}

// BackgroundColor returns the background color; the zero Color if unset.
func (t Text) BackgroundColor() ansi.Color {
	return t.bg
}

// Style returns the style attribute set.
func (t Text) Style() ansi.Style {
	return t.style
}

// Render produces the final text using the Default control: the payload
// wrapped in SGR activation and reset sequences when color is enabled,
// the payload unchanged otherwise. A plain Text renders as its payload
// even when color is enabled; no empty SGR wrapper is ever emitted.
func (t Text) Render() string {
	return t.RenderWith(Default)
}

// RenderWith renders against an explicit Control instead of Default.
func (t Text) RenderWith(ctl *Control) string {
	if t.IsPlain() || !ctl.Enabled() {
		return t.payload
	}
	prefix := t.sgrPrefix()
	return prefix + t.escapeInnerResets(prefix) + reset
}

// String renders with the Default control, making Text usable directly
// with the fmt verbs.
func (t Text) String() string {
	return t.Render()
}

// sgrPrefix builds the activation sequence. Parameter order is fixed:
// foreground, background, then style flags in declaration order.
func (t Text) sgrPrefix() string {
	params := make([]string, 0, 10)
	if !t.fg.IsZero() {
		params = append(params, t.fg.Foreground())
	}
	if !t.bg.IsZero() {
		params = append(params, t.bg.Background())
	}
	params = append(params, t.style.Params()...)
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// escapeInnerResets re-applies the activation sequence after every reset
// already embedded in the payload, so wrapping already-rendered colored
// output keeps the outer styling on the trailing segments.
func (t Text) escapeInnerResets(prefix string) string {
	if !strings.Contains(t.payload, reset) {
		return t.payload
	}
	return strings.ReplaceAll(t.payload, reset, reset+prefix)
}
