package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danikagupta/zoomsize/internal/app"
	"github.com/danikagupta/zoomsize/internal/collector"
	"github.com/danikagupta/zoomsize/internal/config"
	"github.com/danikagupta/zoomsize/internal/logging"
	"github.com/danikagupta/zoomsize/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		refreshToken      bool
		refreshRecordings bool
		cacheFile         string
		debug             bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the recording storage summary and detail table",
		Long: `Load the recording collection (from the local cache when present,
otherwise from the Zoom API) and print the summary and detail views.`,
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

			ctx := cmd.Context()
			a := app.New(cfg, logger, nil)

			if refreshToken {
				if _, err := a.RefreshToken(ctx); err != nil {
					return fmt.Errorf("refreshing token: %w", err)
				}
			}

			var recordings collector.Collection
			if refreshRecordings {
				recordings, err = a.RefreshRecordings(ctx)
			} else {
				recordings, err = a.Recordings(ctx)
			}
			if err != nil {
				return err
			}

			return report.WriteText(cmd.OutOrStdout(), recordings)
		},
	}

	cmd.Flags().BoolVar(&refreshToken, "refresh-token", false, "Discard the cached access token and acquire a new one")
	cmd.Flags().BoolVar(&refreshRecordings, "refresh-recordings", false, "Re-fetch the whole collection, bypassing both cache tiers")
	cmd.Flags().StringVar(&cacheFile, "cache-file", "", "Path of the on-disk collection cache (default zoom_recordings.csv)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
