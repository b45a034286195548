// Package vdom provides the virtual node tree the site renders from.
//
// Pages and sections are plain Go functions that build a VNode tree; the
// render package turns that tree into HTML. Nothing in a tree is shared
// between requests, so building a tree is always a pure function of its
// inputs.
//
// # Core Types
//
// VNode represents elements, text, fragments, components and raw HTML.
// Props holds the attributes of an element. Attr is a single attribute and
// is what the attribute helpers (Class, Href, ID, ...) return.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Section(ID("boutique"), Class("products"),
//	    H2(Text("Produits en Vedette")),
//	    P(Text("...")),
//	)
//
// Arguments may be attributes, child nodes, slices of either, strings
// (text shorthand), components, or nil (ignored, which allows conditional
// children such as If(promo, badge)).
package vdom
