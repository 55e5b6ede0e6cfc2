// cmd/gochroma/commands/chart.go
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gochroma/ansi"
	"github.com/willibrandon/gochroma/cmd/gochroma/output"
	"github.com/willibrandon/gochroma/colorize"
	"golang.org/x/term"
)

// NewChartCommand creates the chart command
func NewChartCommand(console *output.Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the available colors",
		Long:  `Print the 16 named colors, the 256-color palette, and the style attributes.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(console)
		},
	}

	return cmd
}

func runChart(console *output.Console) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	console.Println("Named colors:")
	for _, c := range ansi.NamedColors() {
		swatch := colorize.New("    ").Background(c).Render()
		label := colorize.New(fmt.Sprintf("%-16s", c.String())).Foreground(c).Render()
		console.Printf("  %s %s\n", swatch, label)
	}

	console.Println("")
	console.Println("256-color palette:")
	// Two characters per cell, wrapped to the terminal width.
	cols := (width - 2) / 2
	if cols < 8 {
		cols = 8
	}
	var row strings.Builder
	for i := 0; i < 256; i++ {
		row.WriteString(colorize.New("  ").OnPalette(byte(i)).Render())
		if (i+1)%cols == 0 || i == 255 {
			console.Printf("  %s\n", row.String())
			row.Reset()
		}
	}

	console.Println("")
	console.Println("Styles:")
	styles := []struct {
		name string
		flag ansi.Style
	}{
		{"bold", ansi.Bold},
		{"dim", ansi.Dim},
		{"italic", ansi.Italic},
		{"underline", ansi.Underline},
		{"blink", ansi.Blink},
		{"reverse", ansi.Reverse},
		{"hidden", ansi.Hidden},
		{"strikethrough", ansi.Strikethrough},
	}
	for _, s := range styles {
		console.Printf("  %s\n", colorize.New(s.name).Styled(s.flag).Render())
	}

	return nil
}
