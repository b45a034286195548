package routes

import (
	"net/http"

	"github.com/petitemaison/epouvante/pkg/render"
	"github.com/petitemaison/epouvante/pkg/router"
	"github.com/petitemaison/epouvante/pkg/server"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// NotFound renders the fallback page. The diagnostic record is written by
// the server before this runs, so the page itself stays silent.
func (s *Site) NotFound(ctx server.Ctx) (render.PageData, error) {
	ctx.Status(http.StatusNotFound)
	return render.PageData{
		Title: "404",
		Lang:  s.deps.Meta.Lang,
		Body: Div(Class("not-found"),
			Div(Class("not-found-content"),
				H1(Class("not-found-code"), "404"),
				P(Class("not-found-message"), "Oops! Page not found"),
				router.Link("/", Class("not-found-home"), "Return to Home"),
			),
		),
		StyleSheets: []string{ctx.Asset("styles.css")},
	}, nil
}
