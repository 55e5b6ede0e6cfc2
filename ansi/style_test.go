package ansi

import (
	"reflect"
	"testing"
)

func TestStyle_Params(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  []string
	}{
		{"empty", 0, nil},
		{"bold", Bold, []string{"1"}},
		{"dim", Dim, []string{"2"}},
		{"italic", Italic, []string{"3"}},
		{"underline", Underline, []string{"4"}},
		{"blink", Blink, []string{"5"}},
		{"reverse", Reverse, []string{"7"}},
		{"hidden", Hidden, []string{"8"}},
		{"strikethrough", Strikethrough, []string{"9"}},
		{"bold underline", Bold | Underline, []string{"1", "4"}},
		{"order is declaration order", Strikethrough | Bold, []string{"1", "9"}},
		{"all", Bold | Dim | Italic | Underline | Blink | Reverse | Hidden | Strikethrough,
			[]string{"1", "2", "3", "4", "5", "7", "8", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Params(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Params() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyle_String(t *testing.T) {
	if got := (Bold | Underline | Strikethrough).String(); got != "1;4;9" {
		t.Errorf("String() = %q, want %q", got, "1;4;9")
	}
	if got := Style(0).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestStyle_Contains(t *testing.T) {
	s := Bold.With(Italic)
	if !s.Contains(Bold) {
		t.Error("expected Bold to be set")
	}
	if !s.Contains(Italic) {
		t.Error("expected Italic to be set")
	}
	if s.Contains(Dim) {
		t.Error("Dim should not be set")
	}
	if !s.Contains(Bold | Italic) {
		t.Error("expected combined flags to be contained")
	}
	if s.Contains(Bold | Dim) {
		t.Error("partially present combination should not be contained")
	}
}

func TestStyle_WithIsIdempotent(t *testing.T) {
	s := Bold.With(Bold).With(Bold)
	if got := s.String(); got != "1" {
		t.Errorf("String() = %q, want %q", got, "1")
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input string
		want  Style
	}{
		{"bold", Bold},
		{"DIM", Dim},
		{"italic", Italic},
		{"underline", Underline},
		{"blink", Blink},
		{"reverse", Reverse},
		{"hidden", Hidden},
		{" strikethrough ", Strikethrough},
	}

	for _, tt := range tests {
		got, err := ParseStyle(tt.input)
		if err != nil {
			t.Fatalf("ParseStyle(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseStyle("sparkle"); err == nil {
		t.Error("expected error for unknown style")
	}
}
