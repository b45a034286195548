package routes

import (
	"net/http"

	"github.com/petitemaison/epouvante/internal/newsletter"
	"github.com/petitemaison/epouvante/pkg/render"
	"github.com/petitemaison/epouvante/pkg/server"
	"github.com/petitemaison/epouvante/pkg/toast"
)

// Subscribe handles the signup form.
//
// A blank email renders the page unchanged with no toast. An accepted email
// (new or already subscribed) gets the welcome toast and a cleared input.
// Anything else gets an error toast and keeps what the visitor typed.
func (s *Site) Subscribe(ctx server.Ctx) (render.PageData, error) {
	text := s.catalog().Newsletter
	email := ctx.FormValue("email")

	result, err := s.deps.Newsletter.Subscribe(ctx.StdContext(), email)
	if result != newsletter.ResultEmpty {
		s.deps.Metrics.RecordSignup(string(result))
	}

	value := ""
	switch {
	case result.OK():
		toast.Success(ctx, text.SuccessTitle, text.SuccessDescription)

	case result == newsletter.ResultInvalid:
		ctx.Logger().Debug("signup rejected", "error", err)
		toast.Error(ctx, text.ErrorTitle, text.ErrorDescription)
		ctx.Status(http.StatusUnprocessableEntity)
		value = email

	case result == newsletter.ResultError:
		ctx.Logger().Error("signup failed", "error", err)
		toast.Error(ctx, text.ErrorTitle, text.ErrorDescription)
		ctx.Status(http.StatusServiceUnavailable)
		value = email
	}

	return s.newsletterPage(ctx, value), nil
}
