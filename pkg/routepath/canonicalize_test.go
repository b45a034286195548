package routepath

import (
	"errors"
	"testing"
)

func TestCanonicalizePath(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPath    string
		wantQuery   string
		wantChanged bool
	}{
		{"root", "/", "/", "", false},
		{"empty string", "", "/", "", true},
		{"canonical section", "/boutique", "/boutique", "", false},
		{"no leading slash", "fanzine", "/fanzine", "", true},
		{"trailing slash", "/boutique/", "/boutique", "", true},
		{"collapse slashes", "//fanzine", "/fanzine", "", true},
		{"inner slashes", "/boutique//figurines", "/boutique/figurines", "", true},
		{"single dot", "/boutique/./figurines", "/boutique/figurines", "", true},
		{"double dot", "/boutique/../communaute", "/communaute", "", true},
		{"double dot to root", "/fanzine/../", "/", "", true},
		{"query preserved", "/newsletter?menu=open", "/newsletter", "menu=open", false},
		{"query with trailing slash", "/boutique/?menu=open", "/boutique", "menu=open", true},
		{"valid escape", "/%C3%A9pouvante", "/%C3%A9pouvante", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalizePath(tt.input)
			if err != nil {
				t.Fatalf("CanonicalizePath(%q) error = %v", tt.input, err)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
			if got.Query != tt.wantQuery {
				t.Errorf("Query = %q, want %q", got.Query, tt.wantQuery)
			}
			if got.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", got.Changed, tt.wantChanged)
			}
		})
	}
}

func TestCanonicalizePathErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"backslash", `/boutique\admin`, ErrBackslashInPath},
		{"literal nul", "/a\x00b", ErrNullByteInPath},
		{"encoded nul", "/a%00b", ErrNullByteInPath},
		{"bad escape", "/a%GGb", ErrInvalidPercentEscape},
		{"truncated escape", "/a%2", ErrInvalidPercentEscape},
		{"escapes root", "/../secret", ErrPathEscapesRoot},
		{"escapes root later", "/a/../../secret", ErrPathEscapesRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CanonicalizePath(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanonicalizePath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestResultTarget(t *testing.T) {
	if got := (Result{Path: "/boutique"}).Target(); got != "/boutique" {
		t.Errorf("Target() = %q", got)
	}
	if got := (Result{Path: "/", Query: "menu=open"}).Target(); got != "/?menu=open" {
		t.Errorf("Target() = %q", got)
	}
}
