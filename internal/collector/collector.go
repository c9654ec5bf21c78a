package collector

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/logging"
	"github.com/danikagupta/zoomsize/internal/zoom"
)

// Default horizon: 18 windows of 30 days each, walking backward from now.
// A window step is a fixed 30 days, not a true calendar month.
const (
	DefaultMonthCount = 18
	DefaultWindowDays = 30
)

// Client is the slice of the Zoom API the collector needs.
type Client interface {
	ListLicensedUsers(ctx context.Context, token *oauth2.Token) ([]zoom.UserSummary, error)
	FetchRecordings(ctx context.Context, token *oauth2.Token, userID string, monthsAgo, dayRange int) ([]map[string]any, error)
}

// Options tune the collection horizon.
type Options struct {
	// MonthCount is the number of monthly windows to walk back through.
	MonthCount int
	// WindowDays is the width of each window in days.
	WindowDays int
}

func (o Options) withDefaults() Options {
	if o.MonthCount <= 0 {
		o.MonthCount = DefaultMonthCount
	}
	if o.WindowDays <= 0 {
		o.WindowDays = DefaultWindowDays
	}
	return o
}

// Collector accumulates the full normalized recording collection.
type Collector struct {
	client  Client
	logger  *slog.Logger
	metrics *instrumentation.Metrics
	opts    Options
}

// New creates a Collector. If logger is nil, slog.Default() is used; metrics
// may be nil.
func New(client Client, logger *slog.Logger, metrics *instrumentation.Metrics, opts Options) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		client:  client,
		logger:  logger,
		metrics: metrics,
		opts:    opts.withDefaults(),
	}
}

// Collect fetches and normalizes every licensed user's recordings across the
// configured horizon. Fetches are strictly sequential; a failed (user,
// window) pair is skipped and the loop continues.
func (c *Collector) Collect(ctx context.Context, token *oauth2.Token) (Collection, error) {
	users, err := c.client.ListLicensedUsers(ctx, token)
	if err != nil {
		c.metrics.RecordRefresh(ctx, instrumentation.ResultError)
		return nil, fmt.Errorf("listing licensed users: %w", err)
	}

	var collection Collection
	for _, user := range users {
		c.logger.Info("collecting recordings for user", logging.UserHash(user.Email))

		for month := 0; month < c.opts.MonthCount; month++ {
			raw, err := c.client.FetchRecordings(ctx, token, user.UserID, month, c.opts.WindowDays)
			if err != nil {
				c.logger.Warn("skipping failed window",
					logging.UserHash(user.Email),
					slog.Int(logging.KeyMonthsAgo, month),
					logging.Err(err),
				)
				continue
			}

			for _, r := range raw {
				collection = append(collection, Normalize(r, user))
			}
		}
	}

	c.metrics.RecordRefresh(ctx, instrumentation.ResultSuccess)
	c.logger.Info("collection refresh complete",
		slog.Int("users", len(users)),
		slog.Int("recordings", len(collection)),
	)

	return collection, nil
}
