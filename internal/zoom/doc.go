// Package zoom provides a client for the Zoom v2 REST API, covering the
// three calls the collector needs:
//   - server-to-server OAuth token exchange (account_credentials grant)
//   - listing the account's licensed users
//   - listing a user's cloud recordings for a date window, with pagination
//
// Calls are sequential and blocking; there is no retry or backoff. Failures
// are reported through the typed errors in errors.go so callers can tell
// rejected credentials from throttling and transport trouble.
package zoom
