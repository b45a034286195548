package assets

import "strings"

// Resolver turns an asset name into the URL path a page should reference.
type Resolver interface {
	Asset(source string) string
}

type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver that looks names up in m and prepends
// prefix.
//
//	m, _ := assets.Load("static/manifest.json")
//	r := assets.NewResolver(m, "/static/")
//	r.Asset("styles.css") // "/static/styles.e5f6a7b8.css"
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{
		manifest: m,
		prefix:   normalizePrefix(prefix),
	}
}

func (r *manifestResolver) Asset(source string) string {
	if isAbsoluteURL(source) {
		return source
	}
	return r.prefix + strings.TrimPrefix(r.manifest.Resolve(source), "/")
}

type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that only applies the prefix.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: normalizePrefix(prefix)}
}

func (p *passthrough) Asset(source string) string {
	if isAbsoluteURL(source) {
		return source
	}
	return p.prefix + strings.TrimPrefix(source, "/")
}

// normalizePrefix makes a non-empty prefix end in exactly one slash.
func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return strings.TrimRight(prefix, "/") + "/"
}

// isAbsoluteURL reports whether source already points somewhere else
// (remote images, data URIs).
func isAbsoluteURL(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://") ||
		strings.HasPrefix(source, "//") ||
		strings.HasPrefix(source, "data:")
}
