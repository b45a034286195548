package components

import (
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/assets"
	"github.com/petitemaison/epouvante/pkg/router"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// Hero renders the full-height introduction.
func Hero(a assets.Resolver, h catalog.Hero) *VNode {
	return Section(ID("accueil"), Class("hero"),
		Div(Class("hero-backdrop"),
			If(h.Image != "", Img(Src(asset(a, h.Image)), Alt("La Petite Maison de l'Épouvante"))),
		),
		Div(Class("hero-content"),
			If(h.Eyebrow != "", P(Class("eyebrow"), h.Eyebrow)),
			H1(Class("hero-title"),
				Span(h.Title),
				Br(),
				Span(Class("text-gradient"), h.TitleAccent),
			),
			P(Class("hero-lead"), Raw(h.Lead.HTML())),
			Div(Class("hero-actions"),
				router.Link(h.PrimaryCTA.Href, Class("btn btn-hero btn-xl"), h.PrimaryCTA.Label, Icon("arrow-right")),
				router.Link(h.SecondaryCTA.Href, Class("btn btn-outline btn-xl"), Icon("play"), h.SecondaryCTA.Label),
			),
		),
	)
}

// asset resolves source through a, which may be nil.
func asset(a assets.Resolver, source string) string {
	if a == nil {
		return source
	}
	return a.Asset(source)
}
