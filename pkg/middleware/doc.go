// Package middleware provides the HTTP middleware the site server installs:
//
//   - Prometheus request metrics, plus counters for not-found pages and
//     newsletter signups
//   - OpenTelemetry server spans with W3C trace context propagation
//
// Both are plain func(http.Handler) http.Handler values, so they compose
// with chi's own middleware:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(), m.Handler)
//
// Route labels come from the matched chi route pattern, never from the raw
// request path, so scanners probing random URLs cannot blow up label
// cardinality.
package middleware
