// Package routes maps site paths to pages.
package routes

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/internal/newsletter"
	"github.com/petitemaison/epouvante/pkg/middleware"
	"github.com/petitemaison/epouvante/pkg/server"
)

// SiteMeta is the page-level metadata shared by every route.
type SiteMeta struct {
	Title       string
	Description string
	Lang        string

	// BaseURL, when set, adds canonical and og:url tags.
	BaseURL string
}

// Deps are the collaborators the pages read from.
type Deps struct {
	// Catalog supplies content. Nil means the built-in catalog.
	Catalog *catalog.Store

	// Newsletter records signups. Nil disables POST /newsletter.
	Newsletter *newsletter.Service

	Metrics *middleware.Metrics
	Logger  *slog.Logger
	Meta    SiteMeta
}

// Route is one page reachable by GET.
type Route struct {
	Path    string
	Handler server.Handler
}

// Site renders the pages of the landing site.
type Site struct {
	deps Deps
}

// New creates a Site.
func New(deps Deps) *Site {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Meta.Lang == "" {
		deps.Meta.Lang = "fr"
	}
	return &Site{deps: deps}
}

// Routes lists the GET pages in navigation order, home first.
func (s *Site) Routes() []Route {
	return []Route{
		{Path: "/", Handler: s.Home},
		{Path: "/boutique", Handler: s.Boutique},
		{Path: "/fanzine", Handler: s.Fanzine},
		{Path: "/communaute", Handler: s.Communaute},
		{Path: "/newsletter", Handler: s.Newsletter},
	}
}

// Paths returns the path of every GET page.
func (s *Site) Paths() []string {
	return lo.Map(s.Routes(), func(r Route, _ int) string { return r.Path })
}

// Register mounts every page, the signup form and the not-found page on srv.
func (s *Site) Register(srv *server.Server) {
	for _, r := range s.Routes() {
		srv.Page(r.Path, r.Handler)
	}
	if s.deps.Newsletter != nil {
		srv.Post("/newsletter", s.Subscribe)
	}
	srv.NotFound(s.NotFound)
}

func (s *Site) catalog() *catalog.Catalog {
	if s.deps.Catalog == nil {
		return catalog.Default()
	}
	return s.deps.Catalog.Get()
}
