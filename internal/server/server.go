package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/collector"
	"github.com/danikagupta/zoomsize/internal/logging"
)

// App is the slice of the application the dashboard drives.
type App interface {
	RefreshToken(ctx context.Context) (*oauth2.Token, error)
	Recordings(ctx context.Context) (collector.Collection, error)
	RefreshRecordings(ctx context.Context) (collector.Collection, error)
}

// Server serves the dashboard and its triggers.
type Server struct {
	app            App
	logger         *slog.Logger
	metricsHandler http.Handler
	startTime      time.Time
	ready          atomic.Bool
}

// New creates a dashboard server. metricsHandler may be nil when
// instrumentation is disabled. If logger is nil, slog.Default() is used.
func New(app App, logger *slog.Logger, metricsHandler http.Handler) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		app:            app,
		logger:         logger,
		metricsHandler: metricsHandler,
		startTime:      time.Now(),
	}
	s.ready.Store(true)
	return s
}

// SetReady sets the readiness state reported by /readyz.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)
	r.Post("/refresh/token", s.handleRefreshToken)
	r.Post("/refresh/recordings", s.handleRefreshRecordings)
	r.Get("/healthz", s.handleLiveness)
	r.Get("/readyz", s.handleReadiness)
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	return r
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	col, err := s.app.Recordings(r.Context())
	if err != nil {
		s.logger.Error("loading recordings failed", logging.Err(err))
		http.Error(w, "failed to load recordings", http.StatusBadGateway)
		return
	}
	s.renderDashboard(w, col)
}

func (s *Server) handleRefreshToken(w http.ResponseWriter, r *http.Request) {
	if _, err := s.app.RefreshToken(r.Context()); err != nil {
		s.logger.Error("token refresh failed", logging.Err(err))
		http.Error(w, "token refresh failed", http.StatusBadGateway)
		return
	}
	s.logger.Info("token refreshed", logging.Operation("refresh_token"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRefreshRecordings(w http.ResponseWriter, r *http.Request) {
	if _, err := s.app.RefreshRecordings(r.Context()); err != nil {
		s.logger.Error("recordings refresh failed", logging.Err(err))
		http.Error(w, "recordings refresh failed", http.StatusBadGateway)
		return
	}
	s.logger.Info("recordings refreshed", logging.Operation("refresh_recordings"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
