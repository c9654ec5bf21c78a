// Package logging provides slog helpers used across the application:
// canonical attribute keys, attribute constructors, and sanitizers for
// values that must not appear verbatim in logs (tokens, user emails).
package logging
