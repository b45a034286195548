package components

import (
	"strconv"

	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/assets"
	"github.com/petitemaison/epouvante/pkg/router"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// ProductsSection renders the featured products grid.
func ProductsSection(a assets.Resolver, s catalog.ProductsSection) *VNode {
	return Section(ID("boutique"), Class("section products"),
		sectionHeader(s.Eyebrow, s.Title, s.Lead),
		Div(Class("product-grid"),
			Range(s.Items, func(p catalog.Product, _ int) *VNode {
				return ProductCard(a, p)
			}),
		),
		Div(Class("section-cta"),
			router.Link(s.CTA.Href, Class("btn btn-outline btn-lg"), s.CTA.Label, Icon("arrow-right")),
		),
	)
}

// sectionHeader is the centered eyebrow, title and lead shared by sections.
func sectionHeader(eyebrow, title string, lead catalog.RichText) *VNode {
	return Div(Class("section-header"),
		If(eyebrow != "", P(Class("eyebrow"), eyebrow)),
		H2(Class("section-title"), title),
		If(lead != "", P(Class("section-lead"), Raw(lead.HTML()))),
	)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
