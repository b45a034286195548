// Package router provides route-aware links.
//
// The site has a handful of fixed routes (/, /boutique, /fanzine, ...).
// Requests are dispatched by the server package; this package only decides
// how links to those routes render for a given current location.
//
// # Location
//
// A Location supplies the current path for one render pass. The server's
// request context implements it, reporting the canonical request path. A
// nil Location means "no location known" and never matches a link.
//
// # Active links
//
// NavLink renders an anchor whose class list gains an active class when the
// link target equals the current path:
//
//	router.NavLink(ctx, router.LinkProps{
//	    To:          "/boutique",
//	    Class:       "nav-link",
//	    ActiveClass: "nav-link-active",
//	    Children:    []any{vdom.Text("Boutique")},
//	})
//
// Matching is exact string equality (IsActive). "/" is active only on "/",
// and "/boutique" is not active on "/boutique/item". Query strings and
// fragments are not stripped, so "/#festival" never matches a path.
//
// # Declarative navigation
//
// Links carry a data-link marker. They never trigger navigation
// themselves; following the href is left to the user agent.
package router
