package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danikagupta/zoomsize/internal/config"
)

// newZoomStub serves a minimal Zoom API: token exchange, two licensed
// users, and one five-MiB recording per user in the newest window only.
func newZoomStub(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	tokenCalls := new(int)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		*tokenCalls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[
			{"id":"u1","display_name":"Lena","email":"lena@example.com","type":2},
			{"id":"u2","display_name":"Lee","email":"lee@example.com","type":2}
		]}`))
	})
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("next_page_token") != "" {
			_, _ = w.Write([]byte(`{"meetings":[]}`))
			return
		}
		resp := map[string]any{"meetings": []map[string]any{}}
		if r.URL.Path == "/users/u1/recordings" || r.URL.Path == "/users/u2/recordings" {
			resp["meetings"] = []map[string]any{{
				"topic":      "standup",
				"total_size": 5_242_880,
				"uuid":       "AAAA==",
			}}
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	return httptest.NewServer(mux), tokenCalls
}

func testApp(t *testing.T, ts *httptest.Server) *App {
	t.Helper()
	return New(config.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		AccountID:    "account-id",
		CacheFile:    filepath.Join(t.TempDir(), "zoom_recordings.csv"),
		BaseURL:      ts.URL,
		TokenURL:     ts.URL + "/oauth/token",
	}, nil, nil)
}

func TestApp_EndToEnd(t *testing.T) {
	ts, tokenCalls := newZoomStub(t)
	defer ts.Close()

	a := testApp(t, ts)
	ctx := context.Background()

	col, err := a.Recordings(ctx)
	require.NoError(t, err)

	// Every window fetch returns the same single meeting, so each user
	// contributes one recording per window. What matters here: both
	// users are present, each row has MB=5 and the owner's identity,
	// and the excluded fields are gone.
	require.NotEmpty(t, col)
	users := map[string]bool{}
	for _, rec := range col {
		assert.Equal(t, 5, rec["MB"])
		assert.NotContains(t, rec, "uuid")
		assert.NotContains(t, rec, "total_size")
		users[rec["user_name"].(string)] = true
	}
	assert.Equal(t, map[string]bool{"Lena": true, "Lee": true}, users)

	// The token was exchanged exactly once and cached for the session.
	assert.Equal(t, 1, *tokenCalls)
	_, err = a.Recordings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *tokenCalls)
}

func TestApp_TokenCachedUntilForcedRefresh(t *testing.T) {
	ts, tokenCalls := newZoomStub(t)
	defer ts.Close()

	a := testApp(t, ts)
	ctx := context.Background()

	tok, err := a.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok.AccessToken)
	assert.Equal(t, 1, *tokenCalls)

	// Cached: no further exchange.
	_, err = a.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *tokenCalls)

	// Forced refresh is the only path that replaces the token.
	_, err = a.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, *tokenCalls)
}

func TestApp_RefreshRecordingsBypassesCache(t *testing.T) {
	ts, _ := newZoomStub(t)
	defer ts.Close()

	a := testApp(t, ts)
	ctx := context.Background()

	first, err := a.Recordings(ctx)
	require.NoError(t, err)

	second, err := a.RefreshRecordings(ctx)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}
