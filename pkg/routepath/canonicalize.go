// Package routepath normalizes request paths before routing.
//
// Link matching compares paths byte for byte, so every request path is
// brought to one canonical spelling first and non-canonical spellings are
// redirected.
package routepath

import (
	"errors"
	"strings"
)

// Result is the outcome of canonicalizing a request target.
type Result struct {
	// Path is the canonical path, without query string.
	Path string

	// Query is the raw query string, without the leading "?".
	Query string

	// Changed is set when Path differs from the input path.
	Changed bool
}

// Target returns the canonical path with its query string, if any.
func (r Result) Target() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// Canonicalization errors. Inputs that produce them are rejected, never
// rewritten.
var (
	ErrBackslashInPath      = errors.New("path contains backslash")
	ErrNullByteInPath       = errors.New("path contains null byte")
	ErrInvalidPercentEscape = errors.New("invalid percent escape sequence")
	ErrPathEscapesRoot      = errors.New("path escapes root via ..")
)

// CanonicalizePath normalizes a request path:
//   - a leading slash is added when missing
//   - repeated slashes collapse (/boutique//x → /boutique/x)
//   - "." segments are dropped and ".." segments resolved
//   - a trailing slash is removed, except for "/"
//
// Backslashes, NUL bytes, malformed percent escapes and ".." above the
// root are errors. A query string is carried over untouched.
func CanonicalizePath(input string) (Result, error) {
	if input == "" {
		return Result{Path: "/", Changed: true}, nil
	}

	path, query, _ := strings.Cut(input, "?")

	if strings.Contains(path, `\`) {
		return Result{}, ErrBackslashInPath
	}
	if strings.Contains(path, "\x00") || strings.Contains(strings.ToUpper(path), "%00") {
		return Result{}, ErrNullByteInPath
	}
	if strings.Contains(path, "%") {
		if err := validatePercentEscapes(path); err != nil {
			return Result{}, err
		}
	}

	segments := make([]string, 0, strings.Count(path, "/")+1)
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) == 0 {
				return Result{}, ErrPathEscapesRoot
			}
			segments = segments[:len(segments)-1]
		default:
			segments = append(segments, seg)
		}
	}

	canonical := "/" + strings.Join(segments, "/")
	return Result{
		Path:    canonical,
		Query:   query,
		Changed: canonical != path,
	}, nil
}

// validatePercentEscapes checks that every % is followed by two hex digits.
func validatePercentEscapes(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] != '%' {
			continue
		}
		if i+2 >= len(path) || !isHexDigit(path[i+1]) || !isHexDigit(path[i+2]) {
			return ErrInvalidPercentEscape
		}
		i += 2
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
