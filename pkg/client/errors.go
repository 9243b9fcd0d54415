package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for session failures. Both force a return to the login view.
var (
	// ErrNotAuthenticated means no session token exists.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired means a token was present but no longer decodes; the
	// session has been cleared by the time this error is returned.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrNoToken means the identity endpoint answered success without a token.
	ErrNoToken = errors.New("no token received")
)

// AuthError is a rejection from the identity endpoint.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (HTTP %d): %s", e.StatusCode, e.Message)
}

// QueryError is a server-reported GraphQL error. Message is the first error's
// message from the response.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return "query failed: " + e.Message
}

// IsAuthFailure reports whether err (or any wrapped error) means the session
// is unusable and the user must log in again.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrSessionExpired)
}
