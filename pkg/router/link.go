package router

import (
	"github.com/petitemaison/epouvante/pkg/vdom"
)

// Location exposes the current path for a render pass.
type Location interface {
	Path() string
}

// StaticLocation is a fixed Location, used when rendering outside a request
// (static export, tests).
type StaticLocation string

// Path implements Location.
func (l StaticLocation) Path() string { return string(l) }

// LinkProps describes one route-aware link.
type LinkProps struct {
	// To is the link target. It is rendered verbatim as href.
	To string

	// Class is always applied when non-empty.
	Class string

	// ActiveClass is appended when To equals the current path.
	ActiveClass string

	// Children is the link content: nodes, strings, or attributes.
	// Attributes here never override href or the computed class.
	Children []any
}

// IsActive reports whether a link to `to` is the active one for `current`.
// It is exact string equality; no normalization happens here.
func IsActive(to, current string) bool {
	return to == current
}

// ClassList computes the class attribute of a link for the given current
// path. The result is empty when neither class applies.
func ClassList(props LinkProps, current string) string {
	if props.ActiveClass != "" && IsActive(props.To, current) {
		return vdom.JoinClasses(props.Class, props.ActiveClass)
	}
	return vdom.JoinClasses(props.Class)
}

// currentPath reads the location, treating nil as unknown.
func currentPath(loc Location) (string, bool) {
	if loc == nil {
		return "", false
	}
	return loc.Path(), true
}

// NavLink renders an anchor for props, styled as active when props.To
// equals the current location.
func NavLink(loc Location, props LinkProps) *vdom.VNode {
	current, known := currentPath(loc)
	active := known && IsActive(props.To, current)

	class := vdom.JoinClasses(props.Class)
	if active {
		class = ClassList(props, current)
	}

	return vdom.A(
		props.Children,
		vdom.Href(props.To),
		DataLink(),
		vdom.AttrIf(class != "", vdom.Class(class)),
		vdom.AttrIf(active, vdom.AriaCurrent("page")),
	)
}

// Link creates an anchor with the navigation marker and no active styling.
func Link(href string, children ...any) *vdom.VNode {
	return vdom.A(
		vdom.Href(href),
		DataLink(),
		children,
	)
}

// DataLink returns the attribute marking an anchor as in-site navigation.
// Empty string value; presence is what matters.
func DataLink() vdom.Attr {
	return vdom.Data("link", "")
}
