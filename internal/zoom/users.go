package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/instrumentation"
	"github.com/danikagupta/zoomsize/internal/logging"
)

const (
	// userPageSize is the page size for the users listing. The whole
	// account is assumed to fit in a single page; continuation tokens are
	// deliberately not followed here.
	userPageSize = 100

	// licensedUserType is Zoom's account-type code for licensed users,
	// the only type eligible for cloud recording.
	licensedUserType = 2
)

// UserSummary identifies one licensed user on the account.
type UserSummary struct {
	UserID   string
	UserName string
	Email    string
}

type listedUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Type        int    `json:"type"`
}

type listUsersResponse struct {
	// Pointer so an absent "users" key is distinguishable from an empty
	// list.
	Users *[]listedUser `json:"users"`
}

// ListLicensedUsers lists the account's users and filters them to the
// licensed subset.
func (c *Client) ListLicensedUsers(ctx context.Context, token *oauth2.Token) ([]UserSummary, error) {
	const op = "list users"

	endpoint := fmt.Sprintf("%s/users?page_size=%d", c.baseURL, userPageSize)

	start := time.Now()
	resp, err := c.get(ctx, token, op, endpoint)
	if err != nil {
		c.metrics.RecordAPIOperation(ctx, "list_users", instrumentation.ResultError, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordAPIOperation(ctx, "list_users", instrumentation.ResultError, time.Since(start))
		return nil, statusError(op, resp.StatusCode)
	}

	var lr listUsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		c.metrics.RecordAPIOperation(ctx, "list_users", instrumentation.ResultError, time.Since(start))
		return nil, &DataShapeError{Op: op, Err: err}
	}
	if lr.Users == nil {
		c.metrics.RecordAPIOperation(ctx, "list_users", instrumentation.ResultError, time.Since(start))
		return nil, &DataShapeError{Op: op, Field: "users"}
	}
	c.metrics.RecordAPIOperation(ctx, "list_users", instrumentation.ResultSuccess, time.Since(start))

	var licensed []UserSummary
	for _, u := range *lr.Users {
		if u.Type != licensedUserType {
			continue
		}
		licensed = append(licensed, UserSummary{
			UserID:   u.ID,
			UserName: u.DisplayName,
			Email:    u.Email,
		})
	}

	c.logger.Debug("listed licensed users",
		logging.Operation("list_users"),
		"total", len(*lr.Users),
		"licensed", len(licensed),
	)

	return licensed, nil
}
