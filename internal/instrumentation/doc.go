// Package instrumentation provides OpenTelemetry metrics for the collector:
// Zoom API call counts and latencies, token exchanges, collection refreshes,
// and cache tier hits. Metrics are exported through a Prometheus registry
// served by the dashboard's /metrics endpoint.
//
// All Metrics record methods are safe on a nil or zero-value receiver, so
// callers that run without instrumentation (the CLI report) can pass nil.
package instrumentation
