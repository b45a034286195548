package routes

import (
	"github.com/petitemaison/epouvante/app/components"
	"github.com/petitemaison/epouvante/pkg/render"
	"github.com/petitemaison/epouvante/pkg/server"
)

// Home renders every section.
func (s *Site) Home(ctx server.Ctx) (render.PageData, error) {
	c := s.catalog()
	return s.page(ctx, "", Layout(ctx, c,
		components.Hero(ctx, c.Hero),
		components.ProductsSection(ctx, c.Products),
		components.FanzineSection(ctx, c.Fanzine),
		components.CommunitySection(c.Community),
		components.NewsletterSection(c.Newsletter, ""),
	)), nil
}

func (s *Site) Boutique(ctx server.Ctx) (render.PageData, error) {
	c := s.catalog()
	return s.page(ctx, "Boutique", Layout(ctx, c,
		components.ProductsSection(ctx, c.Products),
	)), nil
}

func (s *Site) Fanzine(ctx server.Ctx) (render.PageData, error) {
	c := s.catalog()
	return s.page(ctx, "Fanzine", Layout(ctx, c,
		components.FanzineSection(ctx, c.Fanzine),
	)), nil
}

func (s *Site) Communaute(ctx server.Ctx) (render.PageData, error) {
	c := s.catalog()
	return s.page(ctx, "Communauté", Layout(ctx, c,
		components.CommunitySection(c.Community),
	)), nil
}

// Newsletter renders the signup page with an empty form.
func (s *Site) Newsletter(ctx server.Ctx) (render.PageData, error) {
	return s.newsletterPage(ctx, ""), nil
}

func (s *Site) newsletterPage(ctx server.Ctx, value string) render.PageData {
	c := s.catalog()
	return s.page(ctx, "Newsletter", Layout(ctx, c,
		components.NewsletterSection(c.Newsletter, value),
	))
}
