package catalog

import (
	"sync/atomic"

	"github.com/spf13/afero"
)

// Store holds the current catalog and swaps it atomically on reload.
// Readers take one snapshot per request with Get and never see a
// half-applied update.
type Store struct {
	current atomic.Pointer[Catalog]
	fs      afero.Fs
	path    string
}

// NewStore creates a store serving c. fs and path are used by Reload;
// an empty path means the store never reloads.
func NewStore(c *Catalog, fs afero.Fs, path string) *Store {
	s := &Store{fs: fs, path: path}
	s.current.Store(c)
	return s
}

// Open loads the catalog at path (or the built-in one) into a new Store.
func Open(fs afero.Fs, path string) (*Store, error) {
	c, err := LoadOrDefault(fs, path)
	if err != nil {
		return nil, err
	}
	return NewStore(c, fs, path), nil
}

// Get returns the current catalog.
func (s *Store) Get() *Catalog {
	return s.current.Load()
}

// Set replaces the current catalog.
func (s *Store) Set(c *Catalog) {
	s.current.Store(c)
}

// Path returns the catalog file the store reloads from.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the catalog file. On error the current catalog stays in
// place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	c, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(c)
	return nil
}
