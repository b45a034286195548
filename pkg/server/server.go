package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
	"github.com/petitemaison/epouvante/pkg/assets"
	"github.com/petitemaison/epouvante/pkg/middleware"
	"github.com/petitemaison/epouvante/pkg/render"
)

// NotFoundMessage is the diagnostic logged once per not-found render.
const NotFoundMessage = "404 Error: User attempted to access non-existent route:"

// Handler renders the document for one request. A returned error answers
// the request with 500.
type Handler func(ctx Ctx) (render.PageData, error)

// Middleware is a function that wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Server is the HTTP server for the site.
type Server struct {
	config   *Config
	logger   *slog.Logger
	renderer *render.Renderer
	assets   assets.Resolver
	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	staticFs afero.Fs
	extra    []Middleware
	notFound Handler

	router chi.Router

	mu         sync.Mutex
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAssets sets the resolver Ctx.Asset uses.
func WithAssets(r assets.Resolver) Option {
	return func(s *Server) {
		s.assets = r
	}
}

// WithMetrics records request metrics into m and, when g is non-nil,
// serves g at Config.MetricsPath.
func WithMetrics(m *middleware.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithStaticFs serves static files from fs instead of Config.StaticDir.
func WithStaticFs(fs afero.Fs) Option {
	return func(s *Server) {
		s.staticFs = fs
	}
}

// WithMiddleware appends middleware after the built-in stack.
func WithMiddleware(mw ...Middleware) Option {
	return func(s *Server) {
		s.extra = append(s.extra, mw...)
	}
}

// New creates a new Server with the given configuration.
func New(config *Config, opts ...Option) *Server {
	s := &Server{
		config: config.withDefaults(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = render.NewRenderer(render.RendererConfig{Pretty: s.config.Pretty})

	if s.staticFs == nil && s.config.StaticDir != "" {
		s.staticFs = afero.NewBasePathFs(afero.NewOsFs(), s.config.StaticDir)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.GetHead)
	r.Use(s.recoverer)
	r.Use(s.accessLog)
	r.Use(canonicalPaths)
	r.Use(s.metrics.Handler)
	for _, mw := range s.extra {
		r.Use(mw)
	}

	r.NotFound(s.handleNotFound)
	r.Get("/healthz", healthz)
	if s.gatherer != nil && s.config.MetricsPath != "" {
		r.Method(http.MethodGet, s.config.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.staticFs != nil {
		r.Handle(s.config.StaticPrefix+"*", staticHandler(s.staticFs, s.config.StaticPrefix))
	}

	s.router = r
	return s
}

// Page registers h for GET requests to pattern. HEAD requests reach it
// too and get the same headers with no body.
func (s *Server) Page(pattern string, h Handler) {
	s.router.Get(pattern, s.serve(h))
}

// Post registers h for POST requests to pattern.
func (s *Server) Post(pattern string, h Handler) {
	s.router.Post(pattern, s.serve(h))
}

// NotFound sets the handler rendering unmatched routes.
func (s *Server) NotFound(h Handler) {
	s.notFound = h
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Render runs h for a GET of path outside HTTP routing and writes the
// document to w. It returns the status h set. Static export uses it.
func (s *Server) Render(ctx context.Context, w io.Writer, path string, h Handler) (int, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, siteerrors.New("E003").WithDetail(path).Wrap(err)
	}
	c := newCtx(r, s.logger, s.assets)
	if err := s.renderTo(w, c, h); err != nil {
		return 0, err
	}
	return c.StatusCode(), nil
}

func (s *Server) serve(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, newCtx(r, s.requestLogger(r), s.assets), h)
	}
}

// handleNotFound logs the diagnostic, then renders the not-found page.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.logger.ErrorContext(r.Context(), NotFoundMessage, "path", r.URL.Path)
	s.metrics.RecordNotFound()

	if s.notFound == nil {
		http.NotFound(w, r)
		return
	}
	c := newCtx(r, s.requestLogger(r), s.assets)
	c.Status(http.StatusNotFound)
	s.respond(w, c, s.notFound)
}

// respond renders into a buffer first so a failed render still gets a
// clean 500.
func (s *Server) respond(w http.ResponseWriter, c *ctx, h Handler) {
	var buf bytes.Buffer
	if err := s.renderTo(&buf, c, h); err != nil {
		c.Logger().Error("render failed", "path", c.Path(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	header := w.Header()
	for key, values := range c.headers() {
		header[key] = values
	}
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "text/html; charset=utf-8")
	}
	w.WriteHeader(c.StatusCode())
	if c.Method() != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) renderTo(w io.Writer, c *ctx, h Handler) error {
	page, err := h(c)
	if err != nil {
		if siteerrors.Code(err) != "" {
			return err
		}
		return siteerrors.New("E003").WithDetail(c.Path()).Wrap(err)
	}
	if err := s.renderer.RenderPage(w, page); err != nil {
		return siteerrors.New("E003").WithDetail(c.Path()).Wrap(err)
	}
	return nil
}

func (s *Server) requestLogger(r *http.Request) *slog.Logger {
	if id := chimw.GetReqID(r.Context()); id != "" {
		return s.logger.With("request_id", id)
	}
	return s.logger
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// Run listens on Config.Address and serves until ctx is canceled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return siteerrors.New("E001").WithDetail(s.config.Address).Wrap(err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return siteerrors.New("E001").WithDetail(ln.Addr().String()).Wrap(err)

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server, waiting at most
// Config.ShutdownTimeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return siteerrors.New("E002").WithDetail(s.config.ShutdownTimeout.String()).Wrap(err)
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Config returns the server configuration.
func (s *Server) Config() *Config {
	return s.config
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}
