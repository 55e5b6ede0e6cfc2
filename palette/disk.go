package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/willibrandon/gochroma/ansi"
)

// NewFileSuffix for temporary files during atomic write.
const NewFileSuffix = ".new"

// DiskStore persists named colors as a single JSON document. Writes are
// atomic: the document is written to a temporary file and renamed into
// place. Safe for concurrent use within one process.
type DiskStore struct {
	mu   sync.Mutex
	path string
}

// NewDiskStore creates a disk store backed by the given file path,
// creating the parent directory if needed. The file itself is created
// on first Save.
func NewDiskStore(path string) (*DiskStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create palette directory: %w", err)
	}
	return &DiskStore{path: path}, nil
}

// Path returns the backing file path.
func (s *DiskStore) Path() string {
	return s.path
}

// Save stores a color under the given name.
func (s *DiskStore) Save(name string, c ansi.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	text, err := c.MarshalText()
	if err != nil {
		return fmt.Errorf("encode color %q: %w", name, err)
	}
	entries[name] = string(text)
	return s.write(entries)
}

// Load returns the color stored under name.
func (s *DiskStore) Load(name string) (ansi.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return ansi.Color{}, err
	}
	text, ok := entries[name]
	if !ok {
		return ansi.Color{}, ErrNotFound
	}
	var c ansi.Color
	if err := c.UnmarshalText([]byte(text)); err != nil {
		return ansi.Color{}, fmt.Errorf("decode color %q: %w", name, err)
	}
	return c, nil
}

// Names returns all stored names in sorted order.
func (s *DiskStore) Names() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Remove deletes the entry for name.
func (s *DiskStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[name]; !ok {
		return ErrNotFound
	}
	delete(entries, name)
	return s.write(entries)
}

// read loads the document; a missing file is an empty palette.
func (s *DiskStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse palette file %s: %w", s.path, err)
	}
	return entries, nil
}

// write replaces the document atomically.
func (s *DiskStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode palette file: %w", err)
	}
	tmp := s.path + NewFileSuffix
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write palette file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace palette file: %w", err)
	}
	return nil
}
