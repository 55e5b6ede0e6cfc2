package colorize

import "github.com/willibrandon/gochroma/ansi"

// Foreground color shortcuts.

func (t Text) Black() Text         { return t.Foreground(ansi.Black) }
func (t Text) Red() Text           { return t.Foreground(ansi.Red) }
func (t Text) Green() Text         { return t.Foreground(ansi.Green) }
func (t Text) Yellow() Text        { return t.Foreground(ansi.Yellow) }
func (t Text) Blue() Text          { return t.Foreground(ansi.Blue) }
func (t Text) Magenta() Text       { return t.Foreground(ansi.Magenta) }
func (t Text) Cyan() Text          { return t.Foreground(ansi.Cyan) }
func (t Text) White() Text         { return t.Foreground(ansi.White) }
func (t Text) BrightBlack() Text   { return t.Foreground(ansi.BrightBlack) }
func (t Text) BrightRed() Text     { return t.Foreground(ansi.BrightRed) }
func (t Text) BrightGreen() Text   { return t.Foreground(ansi.BrightGreen) }
func (t Text) BrightYellow() Text  { return t.Foreground(ansi.BrightYellow) }
func (t Text) BrightBlue() Text    { return t.Foreground(ansi.BrightBlue) }
func (t Text) BrightMagenta() Text { return t.Foreground(ansi.BrightMagenta) }
func (t Text) BrightCyan() Text    { return t.Foreground(ansi.BrightCyan) }
func (t Text) BrightWhite() Text   { return t.Foreground(ansi.BrightWhite) }

// TrueColor sets a 24-bit foreground color.
func (t Text) TrueColor(r, g, b byte) Text { return t.Foreground(ansi.TrueColor(r, g, b)) }

// Palette sets an 8-bit palette foreground color.
func (t Text) Palette(index byte) Text { return t.Foreground(ansi.Palette(index)) }

// Background color shortcuts.

func (t Text) OnBlack() Text         { return t.Background(ansi.Black) }
func (t Text) OnRed() Text           { return t.Background(ansi.Red) }
func (t Text) OnGreen() Text         { return t.Background(ansi.Green) }
func (t Text) OnYellow() Text        { return t.Background(ansi.Yellow) }
func (t Text) OnBlue() Text          { return t.Background(ansi.Blue) }
func (t Text) OnMagenta() Text       { return t.Background(ansi.Magenta) }
func (t Text) OnCyan() Text          { return t.Background(ansi.Cyan) }
func (t Text) OnWhite() Text         { return t.Background(ansi.White) }
func (t Text) OnBrightBlack() Text   { return t.Background(ansi.BrightBlack) }
func (t Text) OnBrightRed() Text     { return t.Background(ansi.BrightRed) }
func (t Text) OnBrightGreen() Text   { return t.Background(ansi.BrightGreen) }
func (t Text) OnBrightYellow() Text  { return t.Background(ansi.BrightYellow) }
func (t Text) OnBrightBlue() Text    { return t.Background(ansi.BrightBlue) }
func (t Text) OnBrightMagenta() Text { return t.Background(ansi.BrightMagenta) }
func (t Text) OnBrightCyan() Text    { return t.Background(ansi.BrightCyan) }
func (t Text) OnBrightWhite() Text   { return t.Background(ansi.BrightWhite) }

// OnTrueColor sets a 24-bit background color.
func (t Text) OnTrueColor(r, g, b byte) Text { return t.Background(ansi.TrueColor(r, g, b)) }

// OnPalette sets an 8-bit palette background color.
func (t Text) OnPalette(index byte) Text { return t.Background(ansi.Palette(index)) }

// Style shortcuts.

func (t Text) Bold() Text          { return t.Styled(ansi.Bold) }
func (t Text) Dim() Text           { return t.Styled(ansi.Dim) }
func (t Text) Italic() Text        { return t.Styled(ansi.Italic) }
func (t Text) Underline() Text     { return t.Styled(ansi.Underline) }
func (t Text) Blink() Text         { return t.Styled(ansi.Blink) }
func (t Text) Reverse() Text       { return t.Styled(ansi.Reverse) }
func (t Text) Hidden() Text        { return t.Styled(ansi.Hidden) }
func (t Text) Strikethrough() Text { return t.Styled(ansi.Strikethrough) }
