package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/collector"
)

type fakeApp struct {
	tokenRefreshes      int
	recordingsLoads     int
	recordingsRefreshes int
	collection          collector.Collection
	err                 error
}

func (f *fakeApp) RefreshToken(ctx context.Context) (*oauth2.Token, error) {
	f.tokenRefreshes++
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Token{AccessToken: "tok-123"}, nil
}

func (f *fakeApp) Recordings(ctx context.Context) (collector.Collection, error) {
	f.recordingsLoads++
	return f.collection, f.err
}

func (f *fakeApp) RefreshRecordings(ctx context.Context) (collector.Collection, error) {
	f.recordingsRefreshes++
	return f.collection, f.err
}

func sampleApp() *fakeApp {
	return &fakeApp{
		collection: collector.Collection{
			{"user_name": "Lena", "user_email": "lena@example.com", "topic": "standup", "start_time": "2026-08-20T10:00:00Z", "duration": 45, "MB": 512},
			{"user_name": "Lee", "user_email": "lee@example.com", "topic": "retro", "start_time": "2026-08-21T10:00:00Z", "duration": 60, "MB": 1536},
		},
	}
}

func TestDashboard(t *testing.T) {
	app := sampleApp()
	srv := New(app, nil, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Total recordings: 2, total size: 2.0 GB")
	assert.Contains(t, body, "standup")
	assert.Contains(t, body, "lee@example.com")
	assert.Contains(t, body, "Refresh Recordings")
	assert.Equal(t, 1, app.recordingsLoads)
}

func TestDashboard_LoadFailure(t *testing.T) {
	app := &fakeApp{err: assert.AnError}
	srv := New(app, nil, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRefreshTriggers(t *testing.T) {
	app := sampleApp()
	srv := New(app, nil, nil)
	router := srv.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/refresh/token", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, app.tokenRefreshes)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/refresh/recordings", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, app.recordingsRefreshes)

	// Triggers are POST-only.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/refresh/recordings", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	srv := New(sampleApp(), nil, nil)
	router := srv.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	srv.SetReady(false)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not ready")
}

func TestMetricsRouteOnlyWhenHandlerPresent(t *testing.T) {
	srv := New(sampleApp(), nil, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	srv = New(sampleApp(), nil, handler)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# metrics")
}
