package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/willibrandon/gochroma/ansi"
	"github.com/willibrandon/gochroma/cmd/gochroma/cli"
	"github.com/willibrandon/gochroma/palette"
)

// openPaletteStore opens the palette store commands read and write.
// Replaced with an in-memory store in tests.
var openPaletteStore = func() (palette.Store, error) {
	path := cli.PaletteFile()
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate config directory: %w", err)
		}
		path = filepath.Join(dir, "gochroma", "palette.json")
	}
	return palette.NewDiskStore(path)
}

// resolveColor parses spec as a color word, palette index, or hex
// value, falling back to a saved palette name.
func resolveColor(spec string) (ansi.Color, error) {
	if c, err := ansi.ParseColorSpec(spec); err == nil {
		return c, nil
	}
	store, err := openPaletteStore()
	if err != nil {
		return ansi.Color{}, fmt.Errorf("resolve color %q: %w", spec, err)
	}
	c, err := store.Load(spec)
	if err != nil {
		return ansi.Color{}, fmt.Errorf("%q is not a color name, palette index, hex color, or saved palette entry", spec)
	}
	return c, nil
}
