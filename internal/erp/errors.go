package erp

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout means the request did not complete within the configured
	// timeout. There is no built-in retry; callers decide.
	ErrTimeout = errors.New("erp request timeout")
	// ErrAuthExpired is a 401 on a non-login request. The session store has
	// already been cleared by the time callers see it.
	ErrAuthExpired = errors.New("erp session expired")
	// ErrFormat is a response that is not the JSON envelope the backend
	// contract promises.
	ErrFormat = errors.New("erp invalid response format")
	// ErrUnexpected wraps failures that fit none of the above.
	ErrUnexpected = errors.New("erp unexpected error")
)

// APIError is any other non-2xx response, with the message taken from the
// server envelope when it carries one.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("erp api error: %s", e.Status)
	}
	return fmt.Sprintf("erp api error: %s: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
