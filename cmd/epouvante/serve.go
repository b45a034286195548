package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petitemaison/epouvante/internal/catalog"
	"github.com/petitemaison/epouvante/pkg/middleware"
	"github.com/petitemaison/epouvante/pkg/server"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		watch bool
		port  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server until interrupted.

With --watch, edits to the catalog file are picked up without a restart.

Examples:
  epouvante serve
  epouvante serve --config ./deploy --watch
  EPOUVANTE_SERVER_PORT=8080 epouvante serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *configPath, watch, port)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the catalog file on change")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")

	return cmd
}

func runServe(ctx context.Context, configPath string, watch bool, port int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	tracing := middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != cfg.Metrics.Path
		}),
	)
	s, err := newSite(cfg, os.Stderr, siteOptions{
		newsletter: true,
		middleware: []server.Middleware{tracing},
	})
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting", "config", cfg.String(), "version", version)

	if watch || cfg.Catalog.Watch {
		go func() {
			if err := catalog.Watch(ctx, s.catalog, s.logger); err != nil {
				s.logger.Error("catalog watch stopped", "error", err)
			}
		}()
	}

	return s.server.Run(ctx)
}
