package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"

	"github.com/danikagupta/zoomsize/internal/collector"
	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/logging"
	"github.com/danikagupta/zoomsize/internal/session"
)

// DefaultFile is the default on-disk cache artifact.
const DefaultFile = "zoom_recordings.csv"

// RefreshFunc runs a full collection pass over the network.
type RefreshFunc func(ctx context.Context) (collector.Collection, error)

// Cache coordinates the disk and session tiers.
type Cache struct {
	path    string
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// New creates a cache over the given CSV path. If logger is nil,
// slog.Default() is used; metrics may be nil.
func New(path string, logger *slog.Logger, metrics *instrumentation.Metrics) *Cache {
	if path == "" {
		path = DefaultFile
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{path: path, logger: logger, metrics: metrics}
}

// Path returns the on-disk artifact path.
func (c *Cache) Path() string {
	return c.path
}

// LoadOrRefresh applies the cache policy, in priority order: the disk
// artifact, if present, is loaded over any in-memory collection; only when
// both tiers are empty does refresh run. The resulting collection is
// re-encoded to disk before returning, so even a pure disk load rewrites
// the artifact.
func (c *Cache) LoadOrRefresh(ctx context.Context, sess *session.Session, refresh RefreshFunc) (collector.Collection, error) {
	diskHit := false
	fromDisk, err := c.readDisk()
	switch {
	case err == nil:
		diskHit = true
		sess.SetRecordings(fromDisk)
		c.metrics.RecordCacheLoad(ctx, "disk")
		c.logger.Info("loaded recordings from disk cache",
			logging.Tier("disk"),
			slog.String("path", c.path),
			slog.Int("recordings", len(fromDisk)),
		)
	case errors.Is(err, fs.ErrNotExist):
		// Cold disk tier; fall through to memory or refresh.
	default:
		return nil, err
	}

	col, ok := sess.Recordings()
	if !ok {
		c.metrics.RecordCacheLoad(ctx, "refresh")
		fresh, err := refresh(ctx)
		if err != nil {
			return nil, err
		}
		sess.SetRecordings(fresh)
		col = fresh
	} else if !diskHit {
		c.metrics.RecordCacheLoad(ctx, "memory")
	}

	if err := c.writeDisk(col); err != nil {
		return nil, err
	}
	return col, nil
}

// ForceRefresh runs a full collection pass unconditionally and replaces
// both tiers.
func (c *Cache) ForceRefresh(ctx context.Context, sess *session.Session, refresh RefreshFunc) (collector.Collection, error) {
	c.metrics.RecordCacheLoad(ctx, "refresh")
	fresh, err := refresh(ctx)
	if err != nil {
		return nil, err
	}
	sess.SetRecordings(fresh)

	if err := c.writeDisk(fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (c *Cache) readDisk() (collector.Collection, error) {
	f, err := os.Open(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("opening cache file %s: %w", c.path, err)
	}
	defer f.Close()

	col, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("decoding cache file %s: %w", c.path, err)
	}
	if col == nil {
		col = collector.Collection{}
	}
	return col, nil
}

func (c *Cache) writeDisk(col collector.Collection) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, col); err != nil {
		return fmt.Errorf("encoding cache file: %w", err)
	}
	if err := renameio.WriteFile(c.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing cache file %s: %w", c.path, err)
	}
	return nil
}
