// Package server provides the HTTP dashboard: the summary/detail view of
// the recording collection, the refresh triggers, health probes, and the
// Prometheus metrics endpoint.
//
// Routes:
//   - GET  /                    dashboard (summary + detail table)
//   - POST /refresh/token      force a new token exchange
//   - POST /refresh/recordings force a full collection refresh
//   - GET  /healthz            liveness probe
//   - GET  /readyz             readiness probe
//   - GET  /metrics            Prometheus metrics (when instrumentation is on)
package server
