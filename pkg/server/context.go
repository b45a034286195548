package server

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/petitemaison/epouvante/pkg/assets"
)

// Ctx provides access to request data within page handlers and
// components. A Ctx lives for exactly one render pass.
//
// Ctx satisfies router.Location, so it can be handed to router.NavLink
// directly.
type Ctx interface {
	// Request returns the underlying HTTP request.
	Request() *http.Request

	// Path returns the canonical URL path.
	Path() string

	// Method returns the HTTP method.
	Method() string

	// Query returns the URL query parameters.
	Query() url.Values

	// QueryParam returns a single query parameter value by key.
	// Returns an empty string if the key is not present.
	QueryParam(key string) string

	// FormValue returns a field of the submitted form body.
	FormValue(key string) string

	// Status sets the HTTP response status code.
	Status(code int)

	// StatusCode returns the status the response will be written with.
	StatusCode() int

	// SetHeader sets a response header.
	SetHeader(key, value string)

	// Logger returns the request-scoped logger.
	Logger() *slog.Logger

	// StdContext returns the request's context.Context.
	StdContext() context.Context

	// Emit records a request-scoped event. It never blocks and never
	// fails; later components in the same render read it with Events.
	Emit(name string, data any)

	// Events returns the events emitted so far, in emission order.
	Events() []Event

	// Asset resolves a static asset name to the URL a page should
	// reference.
	Asset(source string) string
}

// Event is one request-scoped event recorded by Ctx.Emit.
type Event struct {
	Name string
	Data any
}

// ctx is the implementation of Ctx.
type ctx struct {
	request       *http.Request
	logger        *slog.Logger
	assetResolver assets.Resolver

	mu     sync.Mutex
	status int
	header http.Header
	events []Event
}

func newCtx(r *http.Request, logger *slog.Logger, resolver assets.Resolver) *ctx {
	if logger == nil {
		logger = slog.Default()
	}
	return &ctx{
		request:       r,
		logger:        logger,
		assetResolver: resolver,
		status:        http.StatusOK,
		header:        make(http.Header),
	}
}

// NewTestContext creates a context for r, for testing handlers and
// components outside a running server. A nil request behaves like
// GET "/".
func NewTestContext(r *http.Request) Ctx {
	if r == nil {
		r, _ = http.NewRequest(http.MethodGet, "/", nil)
	}
	return newCtx(r, slog.Default(), nil)
}

func (c *ctx) Request() *http.Request {
	return c.request
}

func (c *ctx) Path() string {
	if c.request == nil || c.request.URL == nil {
		return ""
	}
	return c.request.URL.Path
}

func (c *ctx) Method() string {
	if c.request == nil {
		return ""
	}
	return c.request.Method
}

func (c *ctx) Query() url.Values {
	if c.request == nil || c.request.URL == nil {
		return url.Values{}
	}
	return c.request.URL.Query()
}

func (c *ctx) QueryParam(key string) string {
	return c.Query().Get(key)
}

func (c *ctx) FormValue(key string) string {
	if c.request == nil {
		return ""
	}
	return c.request.PostFormValue(key)
}

func (c *ctx) Status(code int) {
	c.mu.Lock()
	c.status = code
	c.mu.Unlock()
}

func (c *ctx) StatusCode() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *ctx) SetHeader(key, value string) {
	c.mu.Lock()
	c.header.Set(key, value)
	c.mu.Unlock()
}

func (c *ctx) Logger() *slog.Logger {
	return c.logger
}

func (c *ctx) StdContext() context.Context {
	if c.request != nil {
		return c.request.Context()
	}
	return context.Background()
}

func (c *ctx) Emit(name string, data any) {
	c.mu.Lock()
	c.events = append(c.events, Event{Name: name, Data: data})
	c.mu.Unlock()
}

func (c *ctx) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *ctx) Asset(source string) string {
	if c.assetResolver == nil {
		return source
	}
	return c.assetResolver.Asset(source)
}

// headers returns a copy of the response headers set on the context.
func (c *ctx) headers() http.Header {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.header.Clone()
}
