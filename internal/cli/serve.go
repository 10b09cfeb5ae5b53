// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcat/internal/cache"
	"github.com/katalvlaran/lvcat/internal/server"
)

// shutdownTimeout bounds graceful shutdown after an interrupt.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command: run the HTTP API until interrupted.
func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram API over HTTP",
		Long: `Serve exposes /v1/normalize, /v1/eval, /v1/equivalent and /v1/render.
Normal forms are cached in the backend chosen by cache.backend
(none, memory or redis).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			c, err := cache.New(ctx, a.cfg.Cache)
			if err != nil {
				return err
			}
			srv := server.New(a.cfg.Server, server.WithCache(c, a.cfg.Cache.TTL), server.WithLogger(logger))
			if err := srv.Start(ctx); err != nil {
				_ = c.Close()
				return err
			}
			<-ctx.Done()

			logger.Info("shutting down")
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Stop(stopCtx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("cache", "", "cache backend: none, memory, redis")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = a.v.BindPFlag("cache.backend", cmd.Flags().Lookup("cache"))

	return cmd
}
