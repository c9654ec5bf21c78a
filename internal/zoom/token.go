package zoom

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/logging"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AcquireToken exchanges the account's client credentials for a bearer token
// using Zoom's account_credentials grant. One network round-trip; the caller
// owns caching.
func (c *Client) AcquireToken(ctx context.Context, creds Credentials) (*oauth2.Token, error) {
	const op = "token exchange"

	form := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {creds.AccountID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransientFetchError{Op: op, Err: err}
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordTokenExchange(ctx, instrumentation.ResultError)
		return nil, &TransientFetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordTokenExchange(ctx, instrumentation.ResultError)
		return nil, &AuthError{Op: op, StatusCode: resp.StatusCode}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		c.metrics.RecordTokenExchange(ctx, instrumentation.ResultError)
		return nil, &DataShapeError{Op: op, Err: err}
	}
	if tr.AccessToken == "" || tr.ExpiresIn == 0 {
		c.metrics.RecordTokenExchange(ctx, instrumentation.ResultError)
		return nil, &AuthError{Op: op, Err: errors.New("token response missing access_token or expires_in")}
	}

	c.metrics.RecordTokenExchange(ctx, instrumentation.ResultSuccess)
	c.logger.Debug("acquired access token",
		logging.Operation("acquire_token"),
		"token", logging.SanitizeToken(tr.AccessToken),
		"expires_in", tr.ExpiresIn,
	)

	return &oauth2.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
		Expiry:      c.now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}
