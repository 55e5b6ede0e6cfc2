package ansi

import (
	"fmt"
	"strings"
)

// Style is a bit set of independent text attributes. Any combination is
// valid; the zero Style applies nothing.
type Style uint8

const (
	Bold Style = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Hidden
	Strikethrough
)

// styleOrder fixes the order style parameters are emitted in, so
// repeated renders of the same value are byte-identical.
var styleOrder = [...]struct {
	flag Style
	code string
	name string
}{
	{Bold, "1", "bold"},
	{Dim, "2", "dim"},
	{Italic, "3", "italic"},
	{Underline, "4", "underline"},
	{Blink, "5", "blink"},
	{Reverse, "7", "reverse"},
	{Hidden, "8", "hidden"},
	{Strikethrough, "9", "strikethrough"},
}

// With returns the union of s and other.
func (s Style) With(other Style) Style {
	return s | other
}

// Contains reports whether every attribute in other is set in s.
func (s Style) Contains(other Style) bool {
	return s&other == other
}

// Params returns the SGR code for each active attribute, in declaration
// order (bold=1, dim=2, italic=3, underline=4, blink=5, reverse=7,
// hidden=8, strikethrough=9). The empty set returns nil.
func (s Style) Params() []string {
	if s == 0 {
		return nil
	}
	params := make([]string, 0, len(styleOrder))
	for _, entry := range styleOrder {
		if s.Contains(entry.flag) {
			params = append(params, entry.code)
		}
	}
	return params
}

// String returns the semicolon-joined SGR codes, e.g. "1;4" for
// bold+underline. The empty set returns "".
func (s Style) String() string {
	return strings.Join(s.Params(), ";")
}

// ParseStyle parses a single attribute name such as "bold" or
// "strikethrough".
func ParseStyle(name string) (Style, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range styleOrder {
		if entry.name == normalized {
			return entry.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown style %q", name)
}
