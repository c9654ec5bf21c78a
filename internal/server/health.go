package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// Health status constants for health check responses.
const (
	healthStatusOK       = "ok"
	healthStatusNotReady = "not ready"
)

// HealthResponse is the JSON body of the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
}

// handleLiveness answers /healthz. Liveness only asserts the process is
// serving.
func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status: healthStatusOK,
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

// handleReadiness answers /readyz.
func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := HealthResponse{Status: healthStatusOK}
	code := http.StatusOK
	if !s.ready.Load() {
		resp.Status = healthStatusNotReady
		code = http.StatusServiceUnavailable
	}

	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
