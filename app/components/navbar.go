package components

import (
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/router"
	"github.com/petitemaison/epouvante/pkg/server"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// menuParam opens the mobile menu when set to "open".
const menuParam = "menu"

// NavbarState is the navbar's local state for one render.
type NavbarState struct {
	MenuOpen bool
}

// NavbarStateFrom reads the navbar state from the request.
func NavbarStateFrom(ctx server.Ctx) NavbarState {
	return NavbarState{MenuOpen: ctx.QueryParam(menuParam) == "open"}
}

// ToggleHref is the target of the menu button on path: it flips the menu.
func (s NavbarState) ToggleHref(path string) string {
	if s.MenuOpen {
		return path
	}
	return path + "?" + menuParam + "=open"
}

// Navbar renders the site header. Section links are route-aware: the one
// matching loc is styled active.
func Navbar(loc router.Location, c *catalog.Catalog, state NavbarState) *VNode {
	current := ""
	if loc != nil {
		current = loc.Path()
	}

	return Header(Class("navbar"),
		Nav(Class("navbar-inner"), AriaLabel("Navigation principale"),
			router.Link("/", Class("navbar-brand"),
				Span(Class("brand-name"), c.Brand.Name),
				Span(Class("brand-tagline"), c.Brand.Tagline),
			),

			Ul(Class("navbar-links"),
				Range(c.Nav, func(l catalog.Link, _ int) *VNode {
					return Li(Key(l.Href), navLink(loc, l, "nav-link"))
				}),
			),

			Div(Class("navbar-actions"),
				router.Link("/boutique", Class("icon-button"), AriaLabel("Panier"), Icon("cart")),
				router.Link("/newsletter", Class("icon-button"), AriaLabel("Compte"), Icon("user")),
				router.Link("/fanzine", Class("btn btn-hero btn-sm"), "S'abonner"),
				A(
					Href(state.ToggleHref(current)),
					Class("menu-toggle"),
					AriaControls("mobile-menu"),
					AriaExpanded(state.MenuOpen),
					AriaLabel(menuLabel(state)),
					IfElse(state.MenuOpen, Icon("close"), Icon("menu")),
				),
			),
		),

		When(state.MenuOpen, func() *VNode {
			return Div(ID("mobile-menu"), Class("mobile-menu"),
				Ul(
					Range(c.Nav, func(l catalog.Link, _ int) *VNode {
						return Li(Key(l.Href), navLink(loc, l, "mobile-link"))
					}),
				),
				Div(Class("mobile-menu-actions"),
					router.Link("/boutique", Class("btn btn-ghost"), Icon("cart"), "Panier"),
					router.Link("/newsletter", Class("btn btn-ghost"), Icon("user"), "Compte"),
				),
				router.Link("/fanzine", Class("btn btn-hero"), "S'abonner au Fanzine"),
			)
		}),
	)
}

func navLink(loc router.Location, l catalog.Link, class string) *VNode {
	return router.NavLink(loc, router.LinkProps{
		To:          l.Href,
		Class:       class,
		ActiveClass: "active",
		Children:    []any{l.Name},
	})
}

func menuLabel(state NavbarState) string {
	if state.MenuOpen {
		return "Fermer le menu"
	}
	return "Ouvrir le menu"
}
