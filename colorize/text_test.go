package colorize

import (
	"fmt"
	"testing"

	"github.com/willibrandon/gochroma/ansi"
)

// forcedControl returns a resolved Control that never touches the
// environment.
func forcedControl(enabled bool) *Control {
	ctl := NewControl()
	ctl.Force(enabled)
	return ctl
}

func TestText_RenderPlain(t *testing.T) {
	ctl := forcedControl(true)
	for _, payload := range []string{"", "hi", "multi\nline", "\x1b[0m"} {
		if got := New(payload).RenderWith(ctl); got != payload {
			t.Errorf("plain render of %q = %q, want payload unchanged", payload, got)
		}
	}
}

func TestText_RenderForegroundAndStyle(t *testing.T) {
	ctl := forcedControl(true)
	got := New("hi").Red().Bold().RenderWith(ctl)
	want := "\x1b[31;1mhi\x1b[0m"
	if got != want {
		t.Errorf("RenderWith() = %q, want %q", got, want)
	}
}

func TestText_RenderDisabledGate(t *testing.T) {
	ctl := forcedControl(false)
	got := New("hi").Red().Bold().RenderWith(ctl)
	if got != "hi" {
		t.Errorf("RenderWith() = %q, want %q", got, "hi")
	}
}

func TestText_ParameterOrder(t *testing.T) {
	ctl := forcedControl(true)
	got := New("x").
		Foreground(ansi.Red).
		Background(ansi.Blue).
		Styled(ansi.Bold | ansi.Underline).
		RenderWith(ctl)
	// Foreground first, then background, then flags in declaration order.
	want := "\x1b[31;44;1;4mx\x1b[0m"
	if got != want {
		t.Errorf("RenderWith() = %q, want %q", got, want)
	}
}

func TestText_RenderTrueColor(t *testing.T) {
	ctl := forcedControl(true)
	got := New("x").TrueColor(10, 20, 30).RenderWith(ctl)
	want := "\x1b[38;2;10;20;30mx\x1b[0m"
	if got != want {
		t.Errorf("RenderWith() = %q, want %q", got, want)
	}
}

func TestText_RenderPaletteBackground(t *testing.T) {
	ctl := forcedControl(true)
	got := New("x").OnPalette(200).RenderWith(ctl)
	want := "\x1b[48;5;200mx\x1b[0m"
	if got != want {
		t.Errorf("RenderWith() = %q, want %q", got, want)
	}
}

func TestText_RenderBackgroundOnly(t *testing.T) {
	ctl := forcedControl(true)
	got := New("x").OnBrightWhite().RenderWith(ctl)
	want := "\x1b[107mx\x1b[0m"
	if got != want {
		t.Errorf("RenderWith() = %q, want %q", got, want)
	}
}

func TestText_RenderEmptyPayloadStyled(t *testing.T) {
	ctl := forcedControl(true)
	got := New("").Green().RenderWith(ctl)
	want := "\x1b[32m\x1b[0m"
	if got != want {
		t.Errorf("RenderWith() = %q, want %q", got, want)
	}
}

func TestText_ClearMatchesFreshWrap(t *testing.T) {
	ctl := forcedControl(true)
	styled := New("hello").Red().OnBlue().Bold().Underline()
	if got, want := styled.Clear().RenderWith(ctl), New("hello").RenderWith(ctl); got != want {
		t.Errorf("Clear().Render() = %q, want %q", got, want)
	}
	if !styled.Clear().IsPlain() {
		t.Error("Clear() should produce a plain Text")
	}
}

func TestText_BuilderLeavesOriginalUntouched(t *testing.T) {
	base := New("v")
	red := base.Red()
	bold := base.Bold()

	if !base.IsPlain() {
		t.Error("builder methods must not mutate the receiver")
	}
	if red.Style() != 0 || red.ForegroundColor() != ansi.Red {
		t.Error("Red() should only set the foreground")
	}
	if !bold.ForegroundColor().IsZero() || bold.Style() != ansi.Bold {
		t.Error("Bold() should only set the style")
	}
}

func TestText_StyledAugments(t *testing.T) {
	txt := New("x").Styled(ansi.Bold).Styled(ansi.Underline)
	if txt.Style() != ansi.Bold|ansi.Underline {
		t.Errorf("Style() = %v, want bold|underline", txt.Style())
	}
}

func TestText_RepeatedRendersAreIdentical(t *testing.T) {
	ctl := forcedControl(true)
	txt := New("same").Cyan().OnBrightBlack().Bold().Strikethrough()
	first := txt.RenderWith(ctl)
	for i := 0; i < 5; i++ {
		if got := txt.RenderWith(ctl); got != first {
			t.Fatalf("render %d = %q, want %q", i, got, first)
		}
	}
}

func TestText_InnerResetEscaping(t *testing.T) {
	ctl := forcedControl(true)
	inner := New("in").Blue().RenderWith(ctl)
	outer := New("a"+inner+"b").Red().RenderWith(ctl)
	// The outer style resumes after the inner reset so "b" stays red.
	want := "\x1b[31ma\x1b[34min\x1b[0m\x1b[31mb\x1b[0m"
	if outer != want {
		t.Errorf("nested render = %q, want %q", outer, want)
	}
}

func TestText_StringUsesDefaultControl(t *testing.T) {
	SetOverride(true)
	defer UnsetOverride()

	got := fmt.Sprintf("%s", New("hi").Red().Bold())
	want := "\x1b[31;1mhi\x1b[0m"
	if got != want {
		t.Errorf("Sprintf = %q, want %q", got, want)
	}
}

func TestText_PlainAccessors(t *testing.T) {
	txt := New("payload").Red().Bold()
	if txt.Plain() != "payload" {
		t.Errorf("Plain() = %q, want %q", txt.Plain(), "payload")
	}
	if txt.IsPlain() {
		t.Error("styled text should not report IsPlain")
	}
	if !New("p").IsPlain() {
		t.Error("fresh wrap should report IsPlain")
	}
}
