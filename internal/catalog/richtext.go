package catalog

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// RichText is catalog copy that may carry a little inline markup
// (<br>, <em>, <strong>). After Parse it holds sanitized HTML.
type RichText string

// HTML returns the sanitized markup, safe to emit unescaped.
func (r RichText) HTML() string {
	return string(r)
}

// Plain returns the text with all markup removed and entities decoded,
// for attributes such as meta descriptions.
func (r RichText) Plain() string {
	return html.UnescapeString(strictPolicy.Sanitize(string(r)))
}

var (
	copyPolicy   = newCopyPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func newCopyPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "em", "strong")
	return p
}

// sanitizeRich collapses the whitespace folded YAML leaves behind and
// strips everything the copy policy does not allow.
func sanitizeRich(r RichText) RichText {
	s := strings.Join(strings.Fields(string(r)), " ")
	return RichText(copyPolicy.Sanitize(s))
}

func (c *Catalog) sanitize() {
	for _, field := range []*RichText{
		&c.Brand.Description,
		&c.Hero.Lead,
		&c.Products.Lead,
		&c.Fanzine.Lead,
		&c.Community.Lead,
		&c.Newsletter.Lead,
		&c.Newsletter.Legal,
	} {
		*field = sanitizeRich(*field)
	}
}
