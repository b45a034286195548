// Package assets maps image and stylesheet names to the URLs pages use.
//
// A deployment may ship a manifest.json mapping source names to
// fingerprinted file names:
//
//	{
//	  "styles.css": "styles.e5f6a7b8.css",
//	  "product-figurine.jpg": "product-figurine.91c2d3e4.jpg"
//	}
//
// Without a manifest, names pass through unchanged and only the static
// prefix is applied:
//
//	resolver := assets.NewPassthroughResolver("/static/")
//	resolver.Asset("hero-bg.jpg") // "/static/hero-bg.jpg"
package assets

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spf13/afero"
)

// Manifest holds the mapping from source asset names to fingerprinted names.
// It is safe for concurrent use.
type Manifest struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		entries: make(map[string]string),
	}
}

// Load reads a manifest from the operating system filesystem.
func Load(path string) (*Manifest, error) {
	return LoadFS(afero.NewOsFs(), path)
}

// LoadFS reads a manifest.json file from fs.
// The file must be a flat JSON object of string to string.
func LoadFS(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}

	return &Manifest{entries: entries}, nil
}

// Resolve returns the fingerprinted name for source, or source itself when
// the manifest has no entry.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has returns true if the manifest contains the given source name.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.entries[source]
	return ok
}

// Set adds or updates an entry in the manifest.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[source] = resolved
}

// Len returns the number of entries in the manifest.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
