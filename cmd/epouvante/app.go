package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"

	"github.com/petitemaison/epouvante/app/routes"
	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/internal/config"
	siteerrors "github.com/petitemaison/epouvante/internal/errors"
	"github.com/petitemaison/epouvante/internal/newsletter"
	"github.com/petitemaison/epouvante/pkg/assets"
	"github.com/petitemaison/epouvante/pkg/middleware"
	"github.com/petitemaison/epouvante/pkg/server"
)

// loadConfig reads path as a config file when it names one, otherwise as
// the directory holding epouvante.yaml.
func loadConfig(path string) (*config.Config, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return config.LoadFile(path)
	}
	return config.Load(path)
}

// site wires the configured collaborators into a server.
type site struct {
	cfg      *config.Config
	logger   *slog.Logger
	catalog  *catalog.Store
	store    newsletter.Store
	registry *prometheus.Registry
	pages    *routes.Site
	server   *server.Server
}

type siteOptions struct {
	// newsletter opens the subscriber store and mounts the signup form.
	newsletter bool

	middleware []server.Middleware
}

func newSite(cfg *config.Config, logOut io.Writer, opts siteOptions) (*site, error) {
	logger := cfg.NewLogger(logOut)

	store, err := catalog.Open(afero.NewOsFs(), cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(middleware.WithRegistry(registry))

	s := &site{
		cfg:      cfg,
		logger:   logger,
		catalog:  store,
		registry: registry,
	}

	deps := routes.Deps{
		Catalog: store,
		Metrics: metrics,
		Logger:  logger,
		Meta: routes.SiteMeta{
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
			Lang:        cfg.Site.Lang,
			BaseURL:     cfg.Site.BaseURL,
		},
	}
	if opts.newsletter {
		s.store, err = newsletter.OpenStore(cfg.Newsletter.Store, cfg.Newsletter.BoltPath)
		if err != nil {
			return nil, err
		}
		deps.Newsletter = newsletter.NewService(s.store, logger)
	}
	s.pages = routes.New(deps)

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	s.server = server.New(&server.Config{
		Address:         cfg.Address(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		StaticDir:       cfg.Static.Dir,
		StaticPrefix:    cfg.Static.Prefix,
		MetricsPath:     metricsPath,
	},
		server.WithLogger(logger),
		server.WithAssets(resolver),
		server.WithMetrics(metrics, registry),
		server.WithMiddleware(opts.middleware...),
	)
	s.pages.Register(s.server)

	return s, nil
}

// newResolver uses the asset manifest when one is configured. A relative
// manifest path is looked up in the static directory.
func newResolver(cfg *config.Config) (assets.Resolver, error) {
	if cfg.Static.Manifest == "" {
		return assets.NewPassthroughResolver(cfg.Static.Prefix), nil
	}
	path := cfg.Static.Manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Static.Dir, path)
	}
	m, err := assets.Load(path)
	if err != nil {
		return nil, siteerrors.New("E102").WithDetail(path).Wrap(err)
	}
	return assets.NewResolver(m, cfg.Static.Prefix), nil
}

// staticFs returns the static directory, or nil when it does not exist.
func (s *site) staticFs() afero.Fs {
	if s.cfg.Static.Dir == "" {
		return nil
	}
	if info, err := os.Stat(s.cfg.Static.Dir); err != nil || !info.IsDir() {
		return nil
	}
	return afero.NewBasePathFs(afero.NewOsFs(), s.cfg.Static.Dir)
}

func (s *site) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
