// Package render provides server-side rendering for the site.
//
// The render package converts VNode trees into HTML, handling:
//
//   - HTML5 element rendering, including void elements (input, br, img)
//   - Text and attribute escaping
//   - Boolean attributes (required, disabled, ...)
//   - Deterministic attribute order, so identical trees give identical bytes
//   - Full page documents with DOCTYPE, head and body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title: "La Petite Maison de l'Épouvante",
//	    Lang:  "fr",
//	    Body:  body,
//	})
//
// # Security
//
// All text content is escaped. Raw HTML can be inserted using KindRaw
// nodes, which must only carry sanitized or compile-time content.
package render
