package router

import (
	"reflect"
	"strings"
	"testing"
	"testing/quick"

	"github.com/petitemaison/epouvante/pkg/vdom"
)

func hasClass(node *vdom.VNode, class string) bool {
	for _, c := range strings.Fields(node.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		to      string
		current string
		want    bool
	}{
		{"/", "/", true},
		{"/boutique", "/boutique", true},
		{"/", "/boutique", false},
		{"/boutique", "/boutique/figurines", false},
		{"/boutique", "/boutique/", false},
		{"/boutique", "/boutique?page=2", false},
		{"/#festival", "/", false},
		{"/about", "", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.to+"@"+tt.current, func(t *testing.T) {
			if got := IsActive(tt.to, tt.current); got != tt.want {
				t.Errorf("IsActive(%q, %q) = %v, want %v", tt.to, tt.current, got, tt.want)
			}
		})
	}
}

func TestClassList(t *testing.T) {
	tests := []struct {
		name    string
		props   LinkProps
		current string
		want    string
	}{
		{"nothing provided", LinkProps{To: "/"}, "/", ""},
		{"class only, inactive", LinkProps{To: "/", Class: "custom-class"}, "/about", "custom-class"},
		{"class only, active", LinkProps{To: "/", Class: "custom-class"}, "/", "custom-class"},
		{"active class only, active", LinkProps{To: "/", ActiveClass: "active-link"}, "/", "active-link"},
		{"active class only, inactive", LinkProps{To: "/", ActiveClass: "active-link"}, "/fanzine", ""},
		{"both, active", LinkProps{To: "/fanzine", Class: "nav", ActiveClass: "on"}, "/fanzine", "nav on"},
		{"both, inactive", LinkProps{To: "/fanzine", Class: "nav", ActiveClass: "on"}, "/", "nav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassList(tt.props, tt.current); got != tt.want {
				t.Errorf("ClassList() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNavLink(t *testing.T) {
	t.Run("href and content without active class", func(t *testing.T) {
		node := NavLink(StaticLocation("/"), LinkProps{
			To:       "/about",
			Children: []any{vdom.Text("About")},
		})

		if node.Tag != "a" {
			t.Errorf("Tag = %q, want %q", node.Tag, "a")
		}
		if node.Attr("href") != "/about" {
			t.Errorf("href = %q, want %q", node.Attr("href"), "/about")
		}
		if node.TextContent() != "About" {
			t.Errorf("content = %q, want %q", node.TextContent(), "About")
		}
		if node.HasAttr("class") {
			t.Errorf("class = %v, want no class attribute", node.Props["class"])
		}
		if node.HasAttr("aria-current") {
			t.Error("aria-current should not be set on an inactive link")
		}
	})

	t.Run("custom class", func(t *testing.T) {
		node := NavLink(StaticLocation("/"), LinkProps{
			To:       "/",
			Class:    "custom-class",
			Children: []any{"Home"},
		})
		if !hasClass(node, "custom-class") {
			t.Errorf("class = %q, want custom-class", node.Attr("class"))
		}
	})

	t.Run("active class on exact match", func(t *testing.T) {
		node := NavLink(StaticLocation("/"), LinkProps{
			To:          "/",
			ActiveClass: "active-link",
			Children:    []any{"Home"},
		})
		if !hasClass(node, "active-link") {
			t.Errorf("class = %q, want active-link", node.Attr("class"))
		}
		if node.Attr("aria-current") != "page" {
			t.Errorf("aria-current = %q, want page", node.Attr("aria-current"))
		}
	})

	t.Run("no active class on prefix match", func(t *testing.T) {
		node := NavLink(StaticLocation("/boutique/figurines"), LinkProps{
			To:          "/boutique",
			ActiveClass: "active-link",
		})
		if hasClass(node, "active-link") {
			t.Errorf("class = %q, prefix match must not be active", node.Attr("class"))
		}
	})

	t.Run("root is not active elsewhere", func(t *testing.T) {
		node := NavLink(StaticLocation("/fanzine"), LinkProps{
			To:          "/",
			Class:       "logo",
			ActiveClass: "active-link",
		})
		if got := node.Attr("class"); got != "logo" {
			t.Errorf("class = %q, want %q", got, "logo")
		}
	})

	t.Run("nil location", func(t *testing.T) {
		node := NavLink(nil, LinkProps{To: "", Class: "x", ActiveClass: "active-link"})
		if got := node.Attr("class"); got != "x" {
			t.Errorf("class = %q, want %q", got, "x")
		}
	})

	t.Run("navigation marker", func(t *testing.T) {
		node := NavLink(StaticLocation("/"), LinkProps{To: "/fanzine"})
		if !node.HasAttr("data-link") {
			t.Error("data-link attribute should be present")
		}
	})

	t.Run("child attributes do not override", func(t *testing.T) {
		node := NavLink(StaticLocation("/"), LinkProps{
			To:          "/",
			Class:       "nav",
			ActiveClass: "active",
			Children:    []any{vdom.Class("extra"), vdom.Href("/elsewhere"), "Home"},
		})
		tests := []struct {
			name string
			got  string
			want string
		}{
			{"href", node.Attr("href"), "/"},
			{"class", node.Attr("class"), "nav active"},
			{"aria-current", node.Attr("aria-current"), "page"},
			{"text", node.TextContent(), "Home"},
		}
		for _, tt := range tests {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		}
	})
}

func TestNavLinkProperties(t *testing.T) {
	render := func(to, class, active, current string) *vdom.VNode {
		return NavLink(StaticLocation(current), LinkProps{
			To:          to,
			Class:       class,
			ActiveClass: active,
			Children:    []any{"x"},
		})
	}

	// Classes are generated without whitespace so class-list membership is
	// well defined.
	word := func(s string) string { return strings.Join(strings.Fields(s), "-") }

	inactiveExcludes := func(to, class, active, current string) bool {
		class, active = word(class), word(active)
		if to == current || active == "" || active == class {
			return true
		}
		return !hasClass(render(to, class, active, current), active)
	}
	activeIncludes := func(to, class, active string) bool {
		active = word(active)
		if active == "" {
			return true
		}
		return hasClass(render(to, word(class), active, to), active)
	}
	hrefVerbatim := func(to, current string) bool {
		return render(to, "", "", current).Attr("href") == to
	}
	idempotent := func(to, class, active, current string) bool {
		return reflect.DeepEqual(render(to, class, active, current), render(to, class, active, current))
	}

	for name, f := range map[string]any{
		"inactive link excludes active class": inactiveExcludes,
		"active link includes active class":   activeIncludes,
		"href is verbatim":                    hrefVerbatim,
		"rendering is idempotent":             idempotent,
	} {
		t.Run(name, func(t *testing.T) {
			if err := quick.Check(f, nil); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestLink(t *testing.T) {
	node := Link("/communaute", vdom.Text("communauté"))

	if node.Attr("href") != "/communaute" {
		t.Errorf("href = %q", node.Attr("href"))
	}
	if !node.HasAttr("data-link") {
		t.Error("data-link attribute should be present")
	}
	if node.HasAttr("class") {
		t.Error("plain links carry no class")
	}
}

func TestStaticLocation(t *testing.T) {
	var loc Location = StaticLocation("/communaute")
	if loc.Path() != "/communaute" {
		t.Errorf("Path() = %q, want /communaute", loc.Path())
	}
}
