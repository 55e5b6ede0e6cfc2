// cmd/gochroma/commands/paint.go
package commands

import (
	"github.com/spf13/cobra"
	"github.com/willibrandon/gochroma/ansi"
	"github.com/willibrandon/gochroma/cmd/gochroma/cli"
	"github.com/willibrandon/gochroma/cmd/gochroma/output"
	"github.com/willibrandon/gochroma/colorize"
)

// NewPaintCommand creates the paint command
func NewPaintCommand(console *output.Console) *cobra.Command {
	var (
		fg        string
		bg        string
		styles    []string
		noNewline bool
	)

	cmd := &cobra.Command{
		Use:   "paint TEXT",
		Short: "Render text with colors and styles",
		Long: `Render TEXT wrapped in ANSI escape sequences.

Colors may be given as a color word ("red", "bright cyan"), a 256-color
palette index ("208"), a hex value ("#ff8800"), or the name of a color
saved with "gochroma palette set". When stdout is not a terminal the
text passes through unchanged unless --force-color is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaint(console, args[0], fg, bg, styles, noNewline)
		},
	}

	cmd.Flags().StringVar(&fg, "fg", "", "Foreground color")
	cmd.Flags().StringVar(&bg, "bg", "", "Background color")
	cmd.Flags().StringSliceVar(&styles, "style", nil, "Style attribute (bold, dim, italic, underline, blink, reverse, hidden, strikethrough); repeatable")
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not append a trailing newline")

	return cmd
}

func runPaint(console *output.Console, text, fg, bg string, styles []string, noNewline bool) error {
	t := colorize.New(text)

	if fg != "" {
		c, err := resolveColor(fg)
		if err != nil {
			return err
		}
		t = t.Foreground(c)
	}
	if bg != "" {
		c, err := resolveColor(bg)
		if err != nil {
			return err
		}
		t = t.Background(c)
	}
	for _, name := range styles {
		s, err := ansi.ParseStyle(name)
		if err != nil {
			return err
		}
		t = t.Styled(s)
	}

	cli.Log.Debug("Painting {Chars} characters, fg={Fg}, bg={Bg}, styles={Styles}",
		len(text), t.ForegroundColor().String(), t.BackgroundColor().String(), t.Style().String())

	if noNewline {
		console.Print(t.Render())
	} else {
		console.Println(t.Render())
	}
	return nil
}
