// Package ansi maps colors and text styles to ANSI Select Graphic
// Rendition (SGR) parameters.
//
// It is purely computational: nothing in this package writes to a
// terminal or inspects the environment. Deciding whether the escape
// sequences should be emitted at all is the colorize package's job.
//
// Example:
//
//	c := ansi.TrueColor(10, 20, 30)
//	fmt.Println(c.Foreground()) // 38;2;10;20;30
package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// colorMode discriminates the Color variants.
type colorMode uint8

const (
	modeUnset colorMode = iota
	modeNamed
	modeTrueColor
	modePalette
)

// Color selects a terminal color: one of the 16 named colors, a 24-bit
// truecolor value, or an 8-bit palette index.
//
// The zero Color is "unset" and yields no SGR parameters, so callers can
// hold optional colors by value.
type Color struct {
	mode    colorMode
	code    byte // named: foreground SGR code (30-37 or 90-97)
	index   byte // palette: 8-bit palette index
	r, g, b byte // truecolor components
}

// The 8 standard colors and their bright variants.
var (
	Black         = Color{mode: modeNamed, code: 30}
	Red           = Color{mode: modeNamed, code: 31}
	Green         = Color{mode: modeNamed, code: 32}
	Yellow        = Color{mode: modeNamed, code: 33}
	Blue          = Color{mode: modeNamed, code: 34}
	Magenta       = Color{mode: modeNamed, code: 35}
	Cyan          = Color{mode: modeNamed, code: 36}
	White         = Color{mode: modeNamed, code: 37}
	BrightBlack   = Color{mode: modeNamed, code: 90}
	BrightRed     = Color{mode: modeNamed, code: 91}
	BrightGreen   = Color{mode: modeNamed, code: 92}
	BrightYellow  = Color{mode: modeNamed, code: 93}
	BrightBlue    = Color{mode: modeNamed, code: 94}
	BrightMagenta = Color{mode: modeNamed, code: 95}
	BrightCyan    = Color{mode: modeNamed, code: 96}
	BrightWhite   = Color{mode: modeNamed, code: 97}
)

// Named colors in palette order. Index 0-15 of the 256-color palette maps
// onto this slice.
var named = []struct {
	color Color
	name  string
	rgb   [3]byte
}{
	{Black, "black", [3]byte{0x00, 0x00, 0x00}},
	{Red, "red", [3]byte{0xFF, 0x00, 0x00}},
	{Green, "green", [3]byte{0x00, 0x80, 0x00}},
	{Yellow, "yellow", [3]byte{0xFF, 0xFF, 0x00}},
	{Blue, "blue", [3]byte{0x00, 0x00, 0xFF}},
	{Magenta, "magenta", [3]byte{0xFF, 0x00, 0xFF}},
	{Cyan, "cyan", [3]byte{0x00, 0xFF, 0xFF}},
	{White, "white", [3]byte{0xFF, 0xFF, 0xFF}},
	{BrightBlack, "bright black", [3]byte{0x22, 0x20, 0x24}},
	{BrightRed, "bright red", [3]byte{0xFF, 0x16, 0x0C}},
	{BrightGreen, "bright green", [3]byte{0x32, 0xCD, 0x32}},
	{BrightYellow, "bright yellow", [3]byte{0xFF, 0xFF, 0xE0}},
	{BrightBlue, "bright blue", [3]byte{0xAD, 0xD8, 0xE6}},
	{BrightMagenta, "bright magenta", [3]byte{0xFF, 0x00, 0xCD}},
	{BrightCyan, "bright cyan", [3]byte{0xE0, 0xFF, 0xFF}},
	{BrightWhite, "bright white", [3]byte{0xFF, 0xFF, 0xFF}},
}

// NamedColors returns the 16 named colors in palette order: the 8
// standard colors followed by their bright variants.
func NamedColors() []Color {
	colors := make([]Color, len(named))
	for i, n := range named {
		colors[i] = n.color
	}
	return colors
}

// TrueColor returns a 24-bit color. Components are unconstrained bytes.
func TrueColor(r, g, b byte) Color {
	return Color{mode: modeTrueColor, r: r, g: g, b: b}
}

// Palette returns an 8-bit 256-color palette color.
func Palette(index byte) Color {
	return Color{mode: modePalette, index: index}
}

// IsZero reports whether c is the unset zero Color.
func (c Color) IsZero() bool {
	return c.mode == modeUnset
}

// Foreground returns the SGR parameter string selecting c as the
// foreground color: 30-37 or 90-97 for named colors, 38;2;R;G;B for
// truecolor, 38;5;N for palette colors. The zero Color returns "".
func (c Color) Foreground() string {
	switch c.mode {
	case modeNamed:
		return strconv.Itoa(int(c.code))
	case modeTrueColor:
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	case modePalette:
		return fmt.Sprintf("38;5;%d", c.index)
	}
	return ""
}

// Background returns the SGR parameter string selecting c as the
// background color. Named codes shift by +10 (40-47, 100-107); the
// extended forms use 48 in place of 38. The zero Color returns "".
func (c Color) Background() string {
	switch c.mode {
	case modeNamed:
		return strconv.Itoa(int(c.code) + 10)
	case modeTrueColor:
		return fmt.Sprintf("48;2;%d;%d;%d", c.r, c.g, c.b)
	case modePalette:
		return fmt.Sprintf("48;5;%d", c.index)
	}
	return ""
}

// RGB returns nominal sRGB coordinates for c. Named colors use a fixed
// table of conventional values; palette indexes follow the standard
// xterm 256-color layout. The coordinates are for storage and display
// purposes only and say nothing about how a terminal actually renders
// the color.
func (c Color) RGB() (r, g, b byte) {
	switch c.mode {
	case modeNamed:
		for _, n := range named {
			if n.color == c {
				return n.rgb[0], n.rgb[1], n.rgb[2]
			}
		}
	case modeTrueColor:
		return c.r, c.g, c.b
	case modePalette:
		return paletteRGB(c.index)
	}
	return 0, 0, 0
}

// Hex returns the RRGGBB hex form of RGB().
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// String returns the canonical text form of c, as produced by
// MarshalText. The zero Color returns "".
func (c Color) String() string {
	text, _ := c.MarshalText()
	return string(text)
}

// MarshalText encodes c for text-based serializers: named colors by
// word ("bright red"), palette colors as the bare decimal index,
// truecolor as #rrggbb. The zero Color encodes as the empty string.
func (c Color) MarshalText() ([]byte, error) {
	switch c.mode {
	case modeNamed:
		for _, n := range named {
			if n.color == c {
				return []byte(n.name), nil
			}
		}
		return nil, fmt.Errorf("malformed named color %+v", c)
	case modeTrueColor:
		return []byte("#" + c.Hex()), nil
	case modePalette:
		return []byte(strconv.Itoa(int(c.index))), nil
	}
	return []byte(""), nil
}

// UnmarshalText decodes any form accepted by ParseColorSpec. The empty
// string decodes to the zero Color.
func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Color{}
		return nil
	}
	parsed, err := ParseColorSpec(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a color word such as "red" or "bright cyan".
// Matching is case-insensitive; hyphens and underscores are treated as
// spaces, and "purple" is accepted as an alias for magenta.
func ParseColor(name string) (Color, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)
	if normalized == "purple" {
		return Magenta, nil
	}
	if normalized == "bright purple" {
		return BrightMagenta, nil
	}
	for _, n := range named {
		if n.name == normalized {
			return n.color, nil
		}
	}
	return Color{}, fmt.Errorf("unknown color name %q", name)
}

// ParseHex parses a 6-digit hex color, with or without a leading "#" or
// "0x", into a truecolor value.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "0x")
	digits = strings.TrimPrefix(digits, "#")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%q is not a 6-digit hex color", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%q is not a valid hex color: %w", s, err)
	}
	return TrueColor(byte(v>>16), byte(v>>8), byte(v)), nil
}

// ParseColorSpec parses any supported color form: a color word, a
// decimal palette index (0-255), or a hex truecolor.
func ParseColorSpec(spec string) (Color, error) {
	spec = strings.TrimSpace(spec)
	if c, err := ParseColor(spec); err == nil {
		return c, nil
	}
	if n, err := strconv.ParseUint(spec, 10, 8); err == nil {
		return Palette(byte(n)), nil
	}
	if c, err := ParseHex(spec); err == nil {
		return c, nil
	}
	return Color{}, fmt.Errorf("%q is not a color name, palette index, or hex color", spec)
}

// paletteRGB maps an xterm 256-color index to nominal sRGB coordinates:
// 0-15 are the named colors, 16-231 a 6x6x6 cube, 232-255 a gray ramp.
func paletteRGB(index byte) (r, g, b byte) {
	switch {
	case index < 16:
		rgb := named[index].rgb
		return rgb[0], rgb[1], rgb[2]
	case index < 232:
		cube := func(v byte) byte {
			if v == 0 {
				return 0
			}
			return 55 + 40*v
		}
		n := index - 16
		return cube(n / 36), cube(n / 6 % 6), cube(n % 6)
	default:
		gray := 8 + 10*(index-232)
		return gray, gray, gray
	}
}
