package components

import (
	"strings"

	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/router"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// SiteFooter renders the footer: brand, link columns, stores and contact.
func SiteFooter(b catalog.Brand, f catalog.Footer) *VNode {
	return Footer(Class("site-footer"),
		Div(Class("footer-grid"),
			Div(Class("footer-brand"),
				H3(b.Name, Br(), Span(Class("text-primary"), b.Tagline)),
				If(b.Description != "", P(Raw(b.Description.HTML()))),
				Div(Class("social-links"),
					Range(f.Social, func(s catalog.SocialLink, _ int) *VNode {
						return A(Key(s.Label), Href(s.Href), AriaLabel(s.Label), Class("icon-button"),
							Icon(strings.ToLower(s.Label)),
						)
					}),
				),
			),
			linkColumn("Boutique", f.Shop),
			linkColumn("Entreprise", f.Company),
			Div(Class("footer-column"),
				H4("Nos Magasins"),
				Ul(Class("store-list"),
					Range(f.Stores, func(store string, _ int) *VNode {
						return Li(Key(store), Icon("map-pin"), Span(store))
					}),
				),
				Div(Class("contact"),
					If(f.Email != "", A(Href("mailto:"+f.Email), Icon("mail"), f.Email)),
					If(f.Phone != "", A(Href(telHref(f.Phone)), Icon("phone"), f.Phone)),
				),
			),
		),
		Div(Class("footer-bottom"),
			P(f.Copyright),
			Div(Class("legal-links"),
				Range(f.Legal, func(l catalog.Link, _ int) *VNode {
					return router.Link(l.Href, l.Name)
				}),
			),
		),
	)
}

func linkColumn(title string, links []catalog.Link) *VNode {
	return Div(Class("footer-column"),
		H4(title),
		Ul(
			Range(links, func(l catalog.Link, _ int) *VNode {
				return Li(Key(l.Name), router.Link(l.Href, l.Name))
			}),
		),
	)
}

// telHref builds a tel: URL, dropping the spaces of a display number.
func telHref(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}
