package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency.
const (
	attrOperation = "operation"
	attrResult    = "result"
	attrTier      = "tier"
)

// Result values for metric labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder.
type Metrics struct {
	apiOperationsTotal       metric.Int64Counter
	apiOperationDuration     metric.Float64Histogram
	tokenExchangesTotal      metric.Int64Counter
	collectionRefreshesTotal metric.Int64Counter
	cacheLoadsTotal          metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.apiOperationsTotal, err = meter.Int64Counter(
		"zoom_api_operations_total",
		metric.WithDescription("Total number of Zoom API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zoom_api_operations_total counter: %w", err)
	}

	m.apiOperationDuration, err = meter.Float64Histogram(
		"zoom_api_operation_duration_seconds",
		metric.WithDescription("Zoom API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zoom_api_operation_duration_seconds histogram: %w", err)
	}

	m.tokenExchangesTotal, err = meter.Int64Counter(
		"token_exchanges_total",
		metric.WithDescription("Total number of OAuth token exchanges"),
		metric.WithUnit("{exchange}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token_exchanges_total counter: %w", err)
	}

	m.collectionRefreshesTotal, err = meter.Int64Counter(
		"collection_refreshes_total",
		metric.WithDescription("Total number of full recording collection refreshes"),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection_refreshes_total counter: %w", err)
	}

	m.cacheLoadsTotal, err = meter.Int64Counter(
		"cache_loads_total",
		metric.WithDescription("Total number of recording collection cache loads by tier"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache_loads_total counter: %w", err)
	}

	return m, nil
}

// RecordAPIOperation records a Zoom API call with its result and duration.
func (m *Metrics) RecordAPIOperation(ctx context.Context, operation, result string, duration time.Duration) {
	if m == nil || m.apiOperationsTotal == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrOperation, operation),
		attribute.String(attrResult, result),
	)
	m.apiOperationsTotal.Add(ctx, 1, attrs)
	m.apiOperationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordTokenExchange records an OAuth token exchange attempt.
func (m *Metrics) RecordTokenExchange(ctx context.Context, result string) {
	if m == nil || m.tokenExchangesTotal == nil {
		return
	}
	m.tokenExchangesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, result)))
}

// RecordRefresh records a full collection refresh.
func (m *Metrics) RecordRefresh(ctx context.Context, result string) {
	if m == nil || m.collectionRefreshesTotal == nil {
		return
	}
	m.collectionRefreshesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, result)))
}

// RecordCacheLoad records a collection load served by a cache tier
// ("disk", "memory", or "refresh").
func (m *Metrics) RecordCacheLoad(ctx context.Context, tier string) {
	if m == nil || m.cacheLoadsTotal == nil {
		return
	}
	m.cacheLoadsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrTier, tier)))
}
