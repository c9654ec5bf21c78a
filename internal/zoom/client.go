package zoom

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/instrumentation"
)

// Default endpoint roots for the Zoom v2 API.
const (
	DefaultBaseURL  = "https://api.zoom.us/v2"
	DefaultTokenURL = "https://zoom.us/oauth/token"
)

// Credentials are the server-to-server OAuth secrets for a Zoom account.
// They are read once at startup and immutable for the process lifetime.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccountID    string
}

// Client talks to the Zoom v2 REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokenURL   string
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API base URL. Used by tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTokenURL overrides the OAuth token endpoint.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithMetrics attaches a metrics recorder. A nil recorder is valid.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithClock overrides the time source used for date-window computation.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Zoom API client. If logger is nil, slog.Default() is
// used.
func NewClient(logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		tokenURL:   DefaultTokenURL,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues a bearer-authenticated GET. Network-level failures come back as
// TransientFetchError; the caller owns status handling and the body.
func (c *Client) get(ctx context.Context, token *oauth2.Token, op, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransientFetchError{Op: op, Err: err}
	}
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientFetchError{Op: op, Err: err}
	}
	return resp, nil
}
