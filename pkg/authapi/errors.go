package authapi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBaseURL = errors.New("authapi: invalid base URL")
	ErrMissingToken   = errors.New("authapi: missing bearer token")
	ErrRateLimited    = errors.New("authapi: rate limit wait failed")
	ErrTransport      = errors.New("authapi: request failed")
	ErrDecode         = errors.New("authapi: invalid response body")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	// Message is the server's explanation, if it sent one.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// StatusCode extracts the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
