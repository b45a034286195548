package components

import (
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/assets"
	"github.com/petitemaison/epouvante/pkg/router"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// FanzineSection presents the quarterly fanzine and its subscription.
func FanzineSection(a assets.Resolver, f catalog.Fanzine) *VNode {
	return Section(ID("fanzine"), Class("section fanzine"),
		Div(Class("fanzine-cover"),
			If(f.Image != "", Img(Src(asset(a, f.Image)), Alt("Fanzine Horror"), Loading("lazy"))),
			If(f.Issue != "", Div(Class("badge fanzine-issue"), Icon("star"), Span(f.Issue))),
		),
		Div(Class("fanzine-content"),
			If(f.Eyebrow != "", P(Class("eyebrow"), f.Eyebrow)),
			H2(Class("section-title"),
				f.Title,
				Br(),
				Span(Class("text-gradient"), f.TitleAccent),
			),
			P(Class("section-lead"), Raw(f.Lead.HTML())),
			Ul(Class("perks"),
				Range(f.Perks, func(perk string, i int) *VNode {
					return Li(Key(i), Span(Class("bullet")), Span(perk))
				}),
			),
			Div(Class("fanzine-actions"),
				router.Link(f.Subscribe.Href, Class("btn btn-hero btn-lg"), Icon("book-open"), f.Subscribe.Label),
				router.Link(f.Sample.Href, Class("btn btn-outline btn-lg"), Icon("download"), f.Sample.Label),
			),
		),
	)
}
