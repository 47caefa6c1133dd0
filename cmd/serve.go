package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ytsum/internal/api"
	"ytsum/internal/api/handler/v1handler"
	"ytsum/internal/config"
	"ytsum/pkg/logger"
	"ytsum/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer initializes the HTTP API server and returns a function to
// gracefully shut it down.
func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	srv := api.NewServer(deps, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting http server...", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "could not start http server", zap.Error(err))
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "shutting down http server...")
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not gracefully shutdown http server", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that runs the HTTP API.
func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			provider, err := metrics.Install(prometheus.DefaultRegisterer)
			if err != nil {
				return fmt.Errorf("could not install metrics: %w", err)
			}

			trs, closeTrs, err := newTranscripts(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer closeTrs()

			svc, err := newSummarizer(a.cfg, trs)
			if err != nil {
				return err
			}

			stopServer := setupServer(ctx, a.cfg, api.Deps{Deps: v1handler.Deps{
				Transcripts: trs,
				Summarizer:  svc,
			}})

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopServer(shutdownCtx)
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}

			return nil
		},
	}

	return cmd
}
