package zoom

import "fmt"

// AuthError reports rejected credentials or a rejected bearer token.
type AuthError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("zoom: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("zoom: %s: authorization rejected (status %d)", e.Op, e.StatusCode)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RateLimitError reports a throttled request (HTTP 429).
type RateLimitError struct {
	Op         string
	StatusCode int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("zoom: %s: rate limited (status %d)", e.Op, e.StatusCode)
}

// TransientFetchError reports a network-level failure or an unexpected
// HTTP status that is neither an authorization nor a throttling problem.
type TransientFetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransientFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("zoom: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("zoom: %s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *TransientFetchError) Unwrap() error { return e.Err }

// DataShapeError reports a response that decoded but lacked an expected
// field, or a body that could not be decoded at all.
type DataShapeError struct {
	Op    string
	Field string
	Err   error
}

func (e *DataShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("zoom: %s: response missing %q", e.Op, e.Field)
	}
	return fmt.Sprintf("zoom: %s: undecodable response: %v", e.Op, e.Err)
}

func (e *DataShapeError) Unwrap() error { return e.Err }

// statusError maps a non-200 HTTP status to the matching typed error.
func statusError(op string, status int) error {
	switch status {
	case 401, 403:
		return &AuthError{Op: op, StatusCode: status}
	case 429:
		return &RateLimitError{Op: op, StatusCode: status}
	default:
		return &TransientFetchError{Op: op, StatusCode: status}
	}
}
