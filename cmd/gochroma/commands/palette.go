// cmd/gochroma/commands/palette.go
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/willibrandon/gochroma/ansi"
	"github.com/willibrandon/gochroma/cmd/gochroma/cli"
	"github.com/willibrandon/gochroma/cmd/gochroma/output"
	"github.com/willibrandon/gochroma/colorize"
	"github.com/willibrandon/gochroma/palette"
)

// NewPaletteCommand creates the palette command group
func NewPaletteCommand(console *output.Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Manage saved colors",
		Long: `Save colors under memorable names and reuse them anywhere a color is
accepted, e.g. "gochroma paint --fg brand".`,
	}

	cmd.AddCommand(newPaletteListCommand(console))
	cmd.AddCommand(newPaletteGetCommand(console))
	cmd.AddCommand(newPaletteSetCommand(console))
	cmd.AddCommand(newPaletteRemoveCommand(console))

	return cmd
}

func newPaletteListCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteList(console)
		},
	}
}

func newPaletteGetCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show a saved color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteGet(console, args[0])
		},
	}
}

func newPaletteSetCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "set NAME COLOR",
		Short: "Save a color under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteSet(console, args[0], args[1])
		},
	}
}

func newPaletteRemoveCommand(console *output.Console) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a saved color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaletteRemove(console, args[0])
		},
	}
}

func runPaletteList(console *output.Console) error {
	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	names, err := store.Names()
	if err != nil {
		return err
	}

	cli.Log.Info("Listing {Count} palette entries", len(names))

	for _, name := range names {
		c, err := store.Load(name)
		if err != nil {
			return err
		}
		swatch := colorize.New("  ").Background(c).Render()
		console.Printf("%s %-20s %s\n", swatch, name, c.String())
	}
	return nil
}

func runPaletteGet(console *output.Console, name string) error {
	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	c, err := store.Load(name)
	if errors.Is(err, palette.ErrNotFound) {
		return fmt.Errorf("no color saved as %q", name)
	}
	if err != nil {
		return err
	}
	console.Println(c.String())
	return nil
}

func runPaletteSet(console *output.Console, name, spec string) error {
	// Only literal color forms here; resolving against saved names would
	// let entries alias each other.
	c, err := ansi.ParseColorSpec(spec)
	if err != nil {
		return err
	}
	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	if err := store.Save(name, c); err != nil {
		return err
	}
	console.Success("Saved %q as %s", name, c.String())
	return nil
}

func runPaletteRemove(console *output.Console, name string) error {
	store, err := openPaletteStore()
	if err != nil {
		return err
	}
	if err := store.Remove(name); errors.Is(err, palette.ErrNotFound) {
		return fmt.Errorf("no color saved as %q", name)
	} else if err != nil {
		return err
	}
	console.Success("Removed %q", name)
	return nil
}
