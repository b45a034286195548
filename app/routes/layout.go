package routes

import (
	"strings"

	"github.com/petitemaison/epouvante/app/components"
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/render"
	"github.com/petitemaison/epouvante/pkg/server"
	"github.com/petitemaison/epouvante/pkg/toast"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// Layout wraps page content in the navbar, footer and toaster.
//
// The toaster is a component so it reads the request's toasts when the
// page is rendered, after the handler has emitted them.
func Layout(ctx server.Ctx, c *catalog.Catalog, children ...any) *VNode {
	return Fragment(
		A(Href("#main"), Class("skip-link"), "Aller au contenu"),
		components.Navbar(ctx, c, components.NavbarStateFrom(ctx)),
		Main(ID("main"), children),
		components.SiteFooter(c.Brand, c.Footer),
		Func(func() *VNode {
			return components.Toaster(toast.Pending(ctx))
		}),
	)
}

// page builds the document for one route. title is prepended to the site
// title unless empty.
func (s *Site) page(ctx server.Ctx, title string, body *VNode) render.PageData {
	meta := s.deps.Meta

	full := meta.Title
	if title != "" && meta.Title != "" {
		full = title + " | " + meta.Title
	} else if title != "" {
		full = title
	}

	data := render.PageData{
		Body:        body,
		Title:       full,
		Description: meta.Description,
		Lang:        meta.Lang,
		StyleSheets: []string{ctx.Asset("styles.css")},
		Meta: []render.MetaTag{
			{Property: "og:title", Content: full},
			{Property: "og:type", Content: "website"},
		},
	}
	if meta.Description != "" {
		data.Meta = append(data.Meta, render.MetaTag{Property: "og:description", Content: meta.Description})
	}
	if meta.BaseURL != "" {
		url := strings.TrimSuffix(meta.BaseURL, "/") + ctx.Path()
		data.Meta = append(data.Meta, render.MetaTag{Property: "og:url", Content: url})
		data.Links = append(data.Links, render.LinkTag{Rel: "canonical", Href: url})
	}
	return data
}
