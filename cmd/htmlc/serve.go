package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlcomponent/pkg/server"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		port    int
		host    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the compile server",
		Long: `Run an HTTP server that compiles posted documents.

Endpoints:
  POST /compile   document JSON in, HTML out
  GET  /ws        live compile over websocket
  GET  /healthz   liveness
  GET  /metrics   Prometheus metrics (with --metrics)

Examples:
  htmlc serve
  htmlc serve --port=9000 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				c.cfg.Server.Port = port
			}
			if host != "" {
				c.cfg.Server.Host = host
			}
			if metrics {
				c.cfg.Server.Metrics = true
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			srv := server.New(server.Config{
				Address:      c.cfg.Address(),
				MaxBodyBytes: c.cfg.Server.MaxBodyBytes,
				ReadTimeout:  c.cfg.ReadTimeout(),
				Metrics:      c.cfg.Server.Metrics,
			}, server.WithLogger(c.logger))

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from htmlc.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmlc.json)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose /metrics")

	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
