package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var staticDir, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the static front end and the exported graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if staticDir == "" {
				staticDir = cfg.StaticDir
			}
			if addr == "" {
				addr = cfg.ListenAddr
			}
			graphFile := filepath.Base(cfg.OutputPath)
			if _, err := os.Stat(filepath.Join(staticDir, graphFile)); err != nil {
				logger.Warn("Graph has not been exported yet, run 'votegraph build' first", "dir", staticDir)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("Serving front end", "addr", addr, "dir", staticDir)
			return server.ListenAndServe(ctx, addr, server.NewRouter(staticDir, graphFile))
		},
	}
	cmd.Flags().StringVar(&staticDir, "static", "", "Directory to serve (default from VOTEGRAPH_STATIC)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from VOTEGRAPH_ADDR)")
	return cmd
}
