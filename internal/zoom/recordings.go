package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/logging"
)

const (
	// recordingPageSize is Zoom's maximum page size for the recordings
	// listing.
	recordingPageSize = 300

	dateLayout = "2006-01-02"
)

type recordingsPage struct {
	Meetings      []map[string]any `json:"meetings"`
	NextPageToken string           `json:"next_page_token"`
}

// recordingWindow derives the [from, to] calendar dates for a window that
// ends monthsAgo "months" back and spans dayRange days. A month step is a
// fixed 30 days, not a true calendar month.
func recordingWindow(now time.Time, monthsAgo, dayRange int) (from, to string) {
	startDaysAgo := monthsAgo*30 + dayRange
	endDaysAgo := monthsAgo * 30
	from = now.AddDate(0, 0, -startDaysAgo).Format(dateLayout)
	to = now.AddDate(0, 0, -endDaysAgo).Format(dateLayout)
	return from, to
}

// FetchRecordings retrieves all cloud-recording metadata pages for one user
// and one time window. Pages are requested sequentially, carrying the
// continuation token forward until a page returns none. Any non-200 response
// aborts the whole window.
func (c *Client) FetchRecordings(ctx context.Context, token *oauth2.Token, userID string, monthsAgo, dayRange int) ([]map[string]any, error) {
	const op = "list recordings"

	from, to := recordingWindow(c.now(), monthsAgo, dayRange)

	var all []map[string]any
	nextPageToken := ""
	pages := 0

	for {
		q := url.Values{
			"from":      {from},
			"to":        {to},
			"page_size": {strconv.Itoa(recordingPageSize)},
		}
		if nextPageToken != "" {
			q.Set("next_page_token", nextPageToken)
		}
		endpoint := fmt.Sprintf("%s/users/%s/recordings?%s", c.baseURL, url.PathEscape(userID), q.Encode())

		start := time.Now()
		resp, err := c.get(ctx, token, op, endpoint)
		if err != nil {
			c.metrics.RecordAPIOperation(ctx, "list_recordings", instrumentation.ResultError, time.Since(start))
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			c.metrics.RecordAPIOperation(ctx, "list_recordings", instrumentation.ResultError, time.Since(start))
			return nil, statusError(op, resp.StatusCode)
		}

		var page recordingsPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			c.metrics.RecordAPIOperation(ctx, "list_recordings", instrumentation.ResultError, time.Since(start))
			return nil, &DataShapeError{Op: op, Err: err}
		}
		c.metrics.RecordAPIOperation(ctx, "list_recordings", instrumentation.ResultSuccess, time.Since(start))

		all = append(all, page.Meetings...)
		pages++

		if page.NextPageToken == "" {
			break
		}
		nextPageToken = page.NextPageToken
	}

	c.logger.Debug("fetched recordings window",
		logging.Operation("list_recordings"),
		logging.UserHash(userID),
		slog.Int(logging.KeyMonthsAgo, monthsAgo),
		slog.Int(logging.KeyPages, pages),
		"from", from,
		"to", to,
		"recordings", len(all),
	)

	return all, nil
}
