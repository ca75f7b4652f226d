package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLocalSessionNotFound is returned by Load when no session is stored.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrEmptySessionToken is returned by Save for a session without token.
	ErrEmptySessionToken = errors.New("session token is empty")
)
