package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danikagupta/zoomsize/internal/app"
	"github.com/danikagupta/zoomsize/internal/config"
	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/logging"
	"github.com/danikagupta/zoomsize/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		cacheFile string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recording storage dashboard over HTTP",
		Long: `Start the HTTP dashboard. The front page renders the summary and
detail views; POST /refresh/token and POST /refresh/recordings trigger the
forced refreshes. Prometheus metrics are exposed on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cacheFile != "" {
				cfg.CacheFile = cacheFile
			}

			logger := logging.New(debug)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			provider, err := instrumentation.NewProvider(ctx, instrumentation.NewConfig(version))
			if err != nil {
				return fmt.Errorf("initializing instrumentation: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := provider.Shutdown(shutdownCtx); err != nil {
					logger.Error("instrumentation shutdown failed", logging.Err(err))
				}
			}()

			a := app.New(cfg, logger, provider.Metrics())
			srv := server.New(a, logger, provider.MetricsHandler())

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				srv.SetReady(false)
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					logger.Error("http server shutdown failed", logging.Err(err))
				}
			}()

			logger.Info("dashboard listening", slog.String("addr", addr))
			if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8501", "Listen address for the dashboard")
	cmd.Flags().StringVar(&cacheFile, "cache-file", "", "Path of the on-disk collection cache (default zoom_recordings.csv)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
