package components

import (
	"github.com/petitemaison/epouvante/internal/catalog"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// NewsletterAction is where the signup form posts.
const NewsletterAction = "/newsletter"

// NewsletterSection renders the signup form. value pre-fills the email
// input; it is empty after a successful signup and keeps the visitor's
// input after a rejected one.
func NewsletterSection(n catalog.Newsletter, value string) *VNode {
	return Section(ID("newsletter"), Class("section newsletter"),
		Div(Class("newsletter-icon"), Icon("skull")),
		H2(Class("section-title"),
			n.Title,
			Br(),
			Span(Class("text-gradient"), n.TitleAccent),
		),
		P(Class("section-lead"), Raw(n.Lead.HTML())),
		Form(Class("newsletter-form"), Method("post"), Action(NewsletterAction),
			Label(For("newsletter-email"), Class("sr-only"), "Email"),
			Input(
				ID("newsletter-email"),
				Type("email"),
				Name("email"),
				Placeholder(n.Placeholder),
				Value(value),
				Autocomplete("email"),
				Required(),
			),
			Button(Type("submit"), Class("btn btn-hero btn-lg"), Icon("send"), n.Submit),
		),
		P(Class("newsletter-legal"), Raw(n.Legal.HTML())),
	)
}
