// Package app wires the collection pipeline together: credentials, the Zoom
// client, the session-scoped caches, the collector, and the two-tier cache
// policy. Both the CLI report and the HTTP dashboard drive their refresh
// triggers through it.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/cache"
	"github.com/danikagupta/zoomsize/internal/collector"
	"github.com/danikagupta/zoomsize/internal/config"
	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/session"
	"github.com/danikagupta/zoomsize/internal/zoom"
)

// App holds the assembled pipeline for one logical session.
type App struct {
	creds     zoom.Credentials
	client    *zoom.Client
	sess      *session.Session
	cache     *cache.Cache
	collector *collector.Collector
	logger    *slog.Logger
}

// New assembles the pipeline from configuration. If logger is nil,
// slog.Default() is used; metrics may be nil.
func New(cfg config.Config, logger *slog.Logger, metrics *instrumentation.Metrics) *App {
	if logger == nil {
		logger = slog.Default()
	}

	clientOpts := []zoom.Option{zoom.WithMetrics(metrics)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, zoom.WithBaseURL(cfg.BaseURL))
	}
	if cfg.TokenURL != "" {
		clientOpts = append(clientOpts, zoom.WithTokenURL(cfg.TokenURL))
	}
	client := zoom.NewClient(logger, clientOpts...)

	return &App{
		creds: zoom.Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			AccountID:    cfg.AccountID,
		},
		client:    client,
		sess:      session.New(),
		cache:     cache.New(cfg.CacheFile, logger, metrics),
		collector: collector.New(client, logger, metrics, collector.Options{}),
		logger:    logger,
	}
}

// Session exposes the session-scoped caches.
func (a *App) Session() *session.Session {
	return a.sess
}

// Token returns the session's cached access token, acquiring one on first
// need. The cached token is reused for the whole session without an expiry
// check.
func (a *App) Token(ctx context.Context) (*oauth2.Token, error) {
	if t, ok := a.sess.Token(); ok {
		return t, nil
	}
	return a.RefreshToken(ctx)
}

// RefreshToken unconditionally exchanges credentials for a new token and
// replaces the session's cached one.
func (a *App) RefreshToken(ctx context.Context) (*oauth2.Token, error) {
	t, err := a.client.AcquireToken(ctx, a.creds)
	if err != nil {
		return nil, fmt.Errorf("acquiring access token: %w", err)
	}
	a.sess.SetToken(t)
	return t, nil
}

// Recordings returns the collection through the cache policy: disk wins,
// then memory, then a full network refresh.
func (a *App) Recordings(ctx context.Context) (collector.Collection, error) {
	return a.cache.LoadOrRefresh(ctx, a.sess, a.refresh)
}

// RefreshRecordings runs a full network refresh and replaces both cache
// tiers.
func (a *App) RefreshRecordings(ctx context.Context) (collector.Collection, error) {
	return a.cache.ForceRefresh(ctx, a.sess, a.refresh)
}

func (a *App) refresh(ctx context.Context) (collector.Collection, error) {
	t, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return a.collector.Collect(ctx, t)
}
