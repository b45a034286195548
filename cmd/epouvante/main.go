package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		siteerrors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "epouvante",
		Short: "La Petite Maison de l'Épouvante",
		Long: `Serve, export and publish the landing site of
La Petite Maison de l'Épouvante.

Configuration is read from epouvante.yaml (or .json) in the directory
given by --config, with EPOUVANTE_* environment overrides.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Config directory or file")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		exportCmd(&configPath),
		publishCmd(&configPath),
		subscribersCmd(&configPath),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
