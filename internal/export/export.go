// Package export renders the site to static files.
//
// Every page is rendered through the same server pipeline that answers
// HTTP requests, so an exported page is byte-identical to the served one.
// Pages land at <route>/index.html (the root at index.html), the not-found
// page at 404.html, and static files under the static prefix.
package export

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
	"github.com/petitemaison/epouvante/pkg/server"
)

// NotFoundFile is the name of the exported not-found page.
const NotFoundFile = "404.html"

// Page is one route to export.
type Page struct {
	Path    string
	Handler server.Handler
}

// Result describes an export.
type Result struct {
	// Files lists every written file, slash-separated and relative to the
	// output root, sorted.
	Files []string

	// Pages is the number of rendered pages, not-found page included.
	Pages int

	// Bytes is the total size written.
	Bytes int64

	Duration time.Duration
}

// Exporter renders pages into an afero filesystem.
type Exporter struct {
	srv          *server.Server
	pages        []Page
	notFound     server.Handler
	static       afero.Fs
	staticPrefix string
	logger       *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithNotFound also exports h as 404.html.
func WithNotFound(h server.Handler) Option {
	return func(e *Exporter) {
		e.notFound = h
	}
}

// WithStatic copies every file of fs under prefix.
func WithStatic(fs afero.Fs, prefix string) Option {
	return func(e *Exporter) {
		e.static = fs
		e.staticPrefix = prefix
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Exporter rendering pages with srv.
func New(srv *server.Server, pages []Page, opts ...Option) *Exporter {
	e := &Exporter{
		srv:    srv,
		pages:  pages,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "export")
	return e
}

// Export writes the site into dst. Existing files are overwritten; nothing
// else in dst is touched.
func (e *Exporter) Export(ctx context.Context, dst afero.Fs) (*Result, error) {
	start := time.Now()
	res := &Result{}

	for _, p := range e.pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, status, err := e.render(ctx, p.Path, p.Handler)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, siteerrors.New("E160").WithDetailf("%s answered %d", p.Path, status)
		}
		if err := res.write(dst, PageFile(p.Path), data); err != nil {
			return nil, err
		}
		res.Pages++
	}

	if e.notFound != nil {
		data, _, err := e.render(ctx, "/404", e.notFound)
		if err != nil {
			return nil, err
		}
		if err := res.write(dst, NotFoundFile, data); err != nil {
			return nil, err
		}
		res.Pages++
	}

	if e.static != nil {
		if err := e.copyStatic(dst, res); err != nil {
			return nil, err
		}
	}

	sort.Strings(res.Files)
	res.Duration = time.Since(start)
	e.logger.Info("export complete",
		"pages", res.Pages,
		"files", len(res.Files),
		"bytes", res.Bytes,
		"duration", res.Duration,
	)
	return res, nil
}

func (e *Exporter) render(ctx context.Context, route string, h server.Handler) ([]byte, int, error) {
	var buf bytes.Buffer
	status, err := e.srv.Render(ctx, &buf, route, h)
	if err != nil {
		return nil, 0, siteerrors.New("E160").WithDetail(route).Wrap(err)
	}
	return buf.Bytes(), status, nil
}

func (e *Exporter) copyStatic(dst afero.Fs, res *Result) error {
	base := strings.Trim(e.staticPrefix, "/")
	return afero.Walk(e.static, "/", func(name string, info fs.FileInfo, err error) error {
		if err != nil {
			return siteerrors.New("E161").WithDetail(name).Wrap(err)
		}
		if info.IsDir() {
			return nil
		}
		data, err := afero.ReadFile(e.static, name)
		if err != nil {
			return siteerrors.New("E161").WithDetail(name).Wrap(err)
		}
		return res.write(dst, path.Join(base, strings.TrimPrefix(filepath.ToSlash(name), "/")), data)
	})
}

func (r *Result) write(dst afero.Fs, name string, data []byte) error {
	full := "/" + name
	if err := dst.MkdirAll(path.Dir(full), 0o755); err != nil {
		return siteerrors.New("E161").WithDetail(name).Wrap(err)
	}
	if err := afero.WriteFile(dst, full, data, 0o644); err != nil {
		return siteerrors.New("E161").WithDetail(name).Wrap(err)
	}
	r.Files = append(r.Files, name)
	r.Bytes += int64(len(data))
	return nil
}

// PageFile maps a route to the file it is exported to:
// "/" → "index.html", "/boutique" → "boutique/index.html".
func PageFile(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}
