package advisor

import (
	"errors"
	"fmt"
)

// Classified failures a Client can return. The advisor maps each class to a
// distinct fixed suggestion, and callers pick exit codes off them.
var (
	// ErrUnauthorized means the completion service rejected the credential.
	ErrUnauthorized = errors.New("completion service rejected the API key")

	// ErrRateLimited means the completion service throttled the request.
	ErrRateLimited = errors.New("completion service rate limit exceeded")
)

// APIError is any other service-level failure, carrying the remote status
// code and message so the synthesized suggestion can embed both.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("completion API error (status %d): %s", e.StatusCode, e.Message)
}
