package components

import (
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/assets"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// ProductCard renders one product. A discounted product shows a "Promo"
// badge and its struck original price.
func ProductCard(a assets.Resolver, p catalog.Product) *VNode {
	return Article(Class("product-card"), Data("product-id", itoa(p.ID)),
		Div(Class("product-card-media"),
			Img(Src(asset(a, p.Image)), Alt(p.Title), Loading("lazy")),
			If(p.OnSale(), Span(Class("badge"), "Promo")),
		),
		Div(Class("product-card-body"),
			P(Class("product-card-category"), p.Category),
			H3(Class("product-card-title"), p.Title),
			Div(Class("product-card-footer"),
				Div(Class("product-card-prices"),
					Span(Class("price"), catalog.FormatPrice(p.Price)),
					When(p.OnSale(), func() *VNode {
						return S(Class("price-original"), catalog.FormatPrice(*p.OriginalPrice))
					}),
				),
				Button(Type("button"), Class("icon-button"), AriaLabel("Ajouter au panier"), Icon("cart")),
			),
		),
	)
}
