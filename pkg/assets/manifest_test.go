package assets

import (
	"testing"

	"github.com/spf13/afero"
)

func TestManifestResolve(t *testing.T) {
	m := NewManifest()
	m.Set("styles.css", "styles.def456.css")
	m.Set("hero-bg.jpg", "hero-bg.abc123.jpg")

	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"found entry", "styles.css", "styles.def456.css"},
		{"found image", "hero-bg.jpg", "hero-bg.abc123.jpg"},
		{"missing entry returns original", "unknown.png", "unknown.png"},
		{"empty string returns empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Resolve(tt.source)
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.expected)
			}
		})
	}
}

func TestManifestHasLen(t *testing.T) {
	m := NewManifest()
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	m.Set("styles.css", "styles.1.css")

	if !m.Has("styles.css") {
		t.Error("Has(styles.css) = false, want true")
	}
	if m.Has("unknown.js") {
		t.Error("Has(unknown.js) = true, want false")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestLoadFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "static/manifest.json", []byte(`{"styles.css":"styles.abc.css"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadFS(fs, "static/manifest.json")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if got := m.Resolve("styles.css"); got != "styles.abc.css" {
		t.Errorf("Resolve() = %q, want styles.abc.css", got)
	}
}

func TestLoadFSErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := LoadFS(fs, "missing.json"); err == nil {
		t.Error("expected error for missing file")
	}

	_ = afero.WriteFile(fs, "bad.json", []byte("{not json"), 0o644)
	if _, err := LoadFS(fs, "bad.json"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadFSNullManifest(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "null.json", []byte("null"), 0o644)

	m, err := LoadFS(fs, "null.json")
	if err != nil {
		t.Fatal(err)
	}
	m.Set("a", "b")
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestResolver(t *testing.T) {
	m := NewManifest()
	m.Set("styles.css", "styles.def456.css")

	tests := []struct {
		name     string
		resolver Resolver
		source   string
		expected string
	}{
		{"manifest with prefix", NewResolver(m, "/static/"), "styles.css", "/static/styles.def456.css"},
		{"prefix without trailing slash", NewResolver(m, "/static"), "styles.css", "/static/styles.def456.css"},
		{"no prefix", NewResolver(m, ""), "styles.css", "styles.def456.css"},
		{"unknown entry", NewResolver(m, "/static/"), "logo.png", "/static/logo.png"},
		{"passthrough", NewPassthroughResolver("/static/"), "hero-bg.jpg", "/static/hero-bg.jpg"},
		{"passthrough leading slash", NewPassthroughResolver("/static/"), "/hero-bg.jpg", "/static/hero-bg.jpg"},
		{"remote image untouched", NewPassthroughResolver("/static/"), "https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"data uri untouched", NewResolver(m, "/static/"), "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resolver.Asset(tt.source); got != tt.expected {
				t.Errorf("Asset(%q) = %q, want %q", tt.source, got, tt.expected)
			}
		})
	}
}
