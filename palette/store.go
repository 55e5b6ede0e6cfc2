// Package palette stores user-chosen colors by name.
//
// It is a collaborator around the core color model: stores accept and
// return ansi.Color values in their canonical text form and know
// nothing about rendering.
package palette

import (
	"errors"

	"github.com/willibrandon/gochroma/ansi"
)

// ErrNotFound is returned when no color is stored under a name.
var ErrNotFound = errors.New("palette: color not found")

// Store persists colors by name.
type Store interface {
	// Save stores a color under the given name, replacing any previous
	// entry.
	Save(name string, c ansi.Color) error

	// Load returns the color stored under name, or ErrNotFound.
	Load(name string) (ansi.Color, error)

	// Names returns all stored names in sorted order.
	Names() ([]string, error)

	// Remove deletes the entry for name, or returns ErrNotFound.
	Remove(name string) error
}
