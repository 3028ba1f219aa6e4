package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gitie/pkg/api"
)

var serveOpts struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and generator over HTTP",
	Long: `Start an HTTP server exposing the catalog as JSON and generating documents
on request:

  GET  /api/catalog[?content=1]
  GET  /api/categories/{name}/items
  GET  /api/search?q=
  POST /api/generate        {"selection":["node","python"]}
  GET  /api/download?id=node&id=python
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveOpts.addr
		if addr == "" {
			addr = state.cfg.Serve.Addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		state.notifier.Success("Serving on " + addr)
		return api.Serve(ctx, addr, api.RegisterRoutes(state.catalog, state.generator, state.logger), state.logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "", "Listen address (default from config, else :8080)")

	RootCmd.AddCommand(serveCmd)
}
