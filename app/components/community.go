package components

import (
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/router"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// featureIcons pairs features with icons by position.
var featureIcons = []string{"users", "bell", "message-circle"}

// CommunitySection renders the community pitch and its feature cards.
func CommunitySection(c catalog.Community) *VNode {
	return Section(ID("communaute"), Class("section community"),
		sectionHeader(c.Eyebrow, c.Title, c.Lead),
		Div(Class("feature-grid"),
			Range(c.Features, func(f catalog.Feature, i int) *VNode {
				return Div(Key(i), Class("feature-card"),
					Div(Class("feature-icon"), Icon(featureIcons[i%len(featureIcons)])),
					H3(f.Title),
					P(f.Description),
				)
			}),
		),
		Div(Class("section-cta"),
			router.Link(c.CTA.Href, Class("btn btn-hero btn-lg"), c.CTA.Label, Icon("arrow-right")),
		),
	)
}
