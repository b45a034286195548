// Package server is the HTTP host for the site's pages.
//
// Every request is an independent render: the server builds a fresh Ctx,
// calls the page Handler registered for the route, and streams the
// returned document through pkg/render. Nothing is kept between requests.
//
// # Routing
//
// Routes are served by a chi router. Before routing, request paths are
// canonicalized (see pkg/routepath): a non-canonical path such as
// "/boutique/" or "//fanzine" is answered with a 301 to its canonical
// form, so a Ctx always reports a canonical Path.
//
// Unmatched routes go to the not-found handler, which records one ERROR
// diagnostic with the attempted path and renders with status 404.
//
// # Request events
//
// Handlers and the components they build may Emit events on the Ctx.
// Events live for the request only; components rendered later in the same
// pass read them back with Events. pkg/toast is built on this.
//
// # Example Usage
//
//	srv := server.New(server.DefaultConfig(), server.WithLogger(logger))
//	srv.Page("/", func(ctx server.Ctx) (render.PageData, error) {
//	    return render.PageData{Title: "Accueil", Body: vdom.H1("Bonjour")}, nil
//	})
//	srv.NotFound(notFoundPage)
//
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
