package ansi

import (
	"encoding/json"
	"testing"
)

func TestColor_Foreground(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"black", Black, "30"},
		{"red", Red, "31"},
		{"green", Green, "32"},
		{"yellow", Yellow, "33"},
		{"blue", Blue, "34"},
		{"magenta", Magenta, "35"},
		{"cyan", Cyan, "36"},
		{"white", White, "37"},
		{"bright black", BrightBlack, "90"},
		{"bright red", BrightRed, "91"},
		{"bright white", BrightWhite, "97"},
		{"truecolor", TrueColor(10, 20, 30), "38;2;10;20;30"},
		{"truecolor max", TrueColor(255, 255, 255), "38;2;255;255;255"},
		{"palette", Palette(200), "38;5;200"},
		{"palette zero", Palette(0), "38;5;0"},
		{"unset", Color{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Foreground(); got != tt.want {
				t.Errorf("Foreground() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_Background(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"black", Black, "40"},
		{"red", Red, "41"},
		{"white", White, "47"},
		{"bright black", BrightBlack, "100"},
		{"bright white", BrightWhite, "107"},
		{"truecolor", TrueColor(10, 20, 30), "48;2;10;20;30"},
		{"palette", Palette(200), "48;5;200"},
		{"unset", Color{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Background(); got != tt.want {
				t.Errorf("Background() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_IsZero(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Error("zero Color should report IsZero")
	}
	if Black.IsZero() {
		t.Error("Black should not report IsZero")
	}
	if TrueColor(0, 0, 0).IsZero() {
		t.Error("TrueColor(0,0,0) should not report IsZero")
	}
	if Palette(0).IsZero() {
		t.Error("Palette(0) should not report IsZero")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"black", Black},
		{"red", Red},
		{"green", Green},
		{"yellow", Yellow},
		{"blue", Blue},
		{"magenta", Magenta},
		{"purple", Magenta},
		{"cyan", Cyan},
		{"white", White},
		{"bright black", BrightBlack},
		{"bright red", BrightRed},
		{"bright purple", BrightMagenta},
		{"bright white", BrightWhite},
		{"BLUE", Blue},
		{"bLuE", Blue},
		{"  cyan  ", Cyan},
		{"bright-green", BrightGreen},
		{"bright_yellow", BrightYellow},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColor_Unknown(t *testing.T) {
	if _, err := ParseColor("bloublou"); err == nil {
		t.Error("expected error for unknown color name")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"1f1f1f", TrueColor(0x1F, 0x1F, 0x1F)},
		{"#ABBA12", TrueColor(0xAB, 0xBA, 0x12)},
		{"0x121212", TrueColor(0x12, 0x12, 0x12)},
		{"ff0000", TrueColor(255, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "#fff", "zzzzzz", "#1234567", "0x12"} {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q): expected error", input)
		}
	}
}

func TestParseColorSpec(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"red", Red},
		{"bright cyan", BrightCyan},
		{"200", Palette(200)},
		{"0", Palette(0)},
		{"#00ff88", TrueColor(0, 255, 136)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseColorSpec(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColorSpec(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseColorSpec("299"); err == nil {
		t.Error("expected error for out-of-range palette index")
	}
	if _, err := ParseColorSpec("not a color"); err == nil {
		t.Error("expected error for junk input")
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"black", Black, "000000"},
		{"red", Red, "ff0000"},
		{"green", Green, "008000"},
		{"bright black", BrightBlack, "222024"},
		{"truecolor", TrueColor(0xAB, 0xCD, 0xEF), "abcdef"},
		{"palette gray ramp", Palette(232), "080808"},
		{"palette cube corner", Palette(231), "ffffff"},
		{"palette base", Palette(1), "ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColor_TextRoundTrip(t *testing.T) {
	colors := []Color{
		Black, Red, BrightMagenta, BrightWhite,
		TrueColor(1, 2, 3), Palette(42), {},
	}

	for _, c := range colors {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", c, err)
		}
		var got Color
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != c {
			t.Errorf("round trip %v -> %q -> %v", c, text, got)
		}
	}
}

func TestColor_JSONInterop(t *testing.T) {
	in := struct {
		Accent Color `json:"accent"`
		Muted  Color `json:"muted"`
	}{Accent: TrueColor(0, 255, 136), Muted: BrightBlack}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"accent":"#00ff88","muted":"bright black"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var out struct {
		Accent Color `json:"accent"`
		Muted  Color `json:"muted"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Accent != in.Accent || out.Muted != in.Muted {
		t.Errorf("Unmarshal = %+v, want %+v", out, in)
	}
}

func TestColor_MarshalText_Forms(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{BrightRed, "bright red"},
		{TrueColor(0, 255, 136), "#00ff88"},
		{Palette(200), "200"},
		{Color{}, ""},
	}

	for _, tt := range tests {
		text, err := tt.color.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText error: %v", err)
		}
		if string(text) != tt.want {
			t.Errorf("MarshalText(%v) = %q, want %q", tt.color, text, tt.want)
		}
	}
}
