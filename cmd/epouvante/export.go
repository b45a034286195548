package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/petitemaison/epouvante/app/routes"
	siteerrors "github.com/petitemaison/epouvante/internal/errors"
	"github.com/petitemaison/epouvante/internal/export"
)

func exportCmd(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to static files",
		Long: `Render every page to <out>/<route>/index.html, the not-found page
to <out>/404.html, and copy the static directory.

Examples:
  epouvante export --out dist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(out, 0o755); err != nil {
				return siteerrors.New("E161").WithDetail(out).Wrap(err)
			}
			res, err := runExport(cmd.Context(), *configPath, cmd.ErrOrStderr(), afero.NewBasePathFs(afero.NewOsFs(), out))
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Exported %d pages (%d files) to %s in %s", res.Pages, len(res.Files), out, res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")

	return cmd
}

// runExport renders the configured site into dst.
func runExport(ctx context.Context, configPath string, logOut io.Writer, dst afero.Fs) (*export.Result, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	s, err := newSite(cfg, logOut, siteOptions{})
	if err != nil {
		return nil, err
	}
	defer s.Close()

	pages := lo.Map(s.pages.Routes(), func(r routes.Route, _ int) export.Page {
		return export.Page{Path: r.Path, Handler: r.Handler}
	})
	opts := []export.Option{
		export.WithNotFound(s.pages.NotFound),
		export.WithLogger(s.logger),
	}
	if fs := s.staticFs(); fs != nil {
		opts = append(opts, export.WithStatic(fs, cfg.Static.Prefix))
	}

	return export.New(s.server, pages, opts...).Export(ctx, dst)
}
