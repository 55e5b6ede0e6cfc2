package palette

import (
	"slices"
	"sync"

	"github.com/willibrandon/gochroma/ansi"
)

// MemoryStore keeps named colors in process memory. Safe for concurrent
// use.
type MemoryStore struct {
	mu     sync.RWMutex
	colors map[string]ansi.Color
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		colors: make(map[string]ansi.Color),
	}
}

// Save stores a color under the given name.
func (s *MemoryStore) Save(name string, c ansi.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors[name] = c
	return nil
}

// Load returns the color stored under name.
func (s *MemoryStore) Load(name string) (ansi.Color, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.colors[name]
	if !ok {
		return ansi.Color{}, ErrNotFound
	}
	return c, nil
}

// Names returns all stored names in sorted order.
func (s *MemoryStore) Names() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.colors))
	for name := range s.colors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Remove deletes the entry for name.
func (s *MemoryStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.colors[name]; !ok {
		return ErrNotFound
	}
	delete(s.colors, name)
	return nil
}
