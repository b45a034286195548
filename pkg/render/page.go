package render

import (
	"fmt"
	"io"

	"github.com/petitemaison/epouvante/pkg/vdom"
)

// DefaultLang is used for the html element when PageData.Lang is empty.
const DefaultLang = "fr"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Description fills the description meta tag when non-empty
	Description string

	// Meta contains additional meta tags for the page
	Meta []MetaTag

	// Links contains link tags (favicon, preconnect, etc.)
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Lang is the language attribute for the html element
	// Defaults to DefaultLang if not specified
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string // rel attribute
	Href string // href attribute
	Type string // type attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = DefaultLang
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	sw := &stickyWriter{w: w}

	sw.WriteString("<head>\n")
	sw.WriteString(`  <meta charset="utf-8">` + "\n")
	sw.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")

	if page.Title != "" {
		sw.WriteString("  <title>" + escapeHTML(page.Title) + "</title>\n")
	}
	if page.Description != "" {
		sw.WriteString(`  <meta name="description" content="` + escapeAttr(page.Description) + `">` + "\n")
	}

	for _, meta := range page.Meta {
		sw.WriteString("  <meta")
		if meta.Name != "" {
			sw.WriteString(` name="` + escapeAttr(meta.Name) + `"`)
		}
		if meta.Property != "" {
			sw.WriteString(` property="` + escapeAttr(meta.Property) + `"`)
		}
		sw.WriteString(` content="` + escapeAttr(meta.Content) + `">` + "\n")
	}

	for _, link := range page.Links {
		sw.WriteString(`  <link rel="` + escapeAttr(link.Rel) + `" href="` + escapeAttr(link.Href) + `"`)
		if link.Type != "" {
			sw.WriteString(` type="` + escapeAttr(link.Type) + `"`)
		}
		sw.WriteString(">\n")
	}

	for _, href := range page.StyleSheets {
		sw.WriteString(`  <link rel="stylesheet" href="` + escapeAttr(href) + `">` + "\n")
	}

	sw.WriteString("</head>\n")
	return sw.err
}
