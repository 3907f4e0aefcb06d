package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Sentinel errors for common API failure modes. They are reachable from an
// *APIError via errors.Is.
var (
	ErrUnauthorized = errors.New("github: unauthorized (invalid or revoked token)")
	ErrNotFound     = errors.New("github: resource not found")
	ErrRateLimited  = errors.New("github: API rate limit exceeded")
)

// APIError is returned for any non-2xx response. It carries the HTTP
// status code and the error payload GitHub attaches to failed requests.
type APIError struct {
	StatusCode int
	Message    string           `json:"message"`
	Errors     []APIErrorDetail `json:"errors"`
}

// APIErrorDetail describes a single validation failure inside an APIError.
type APIErrorDetail struct {
	Resource string `json:"resource"`
	Field    string `json:"field"`
	Code     string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("github: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("github: request failed with status %d", e.StatusCode)
}

// Unwrap maps well-known status codes onto sentinel errors so callers can
// use errors.Is without inspecting status codes directly.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(e.Message), "rate limit") {
			return ErrRateLimited
		}
	}
	return nil
}

// newAPIError builds an APIError from a failed response. A body that is
// not the usual {"message": ...} payload is ignored rather than reported,
// the status code alone is still meaningful.
func newAPIError(res *http.Response) *APIError {
	apiErr := &APIError{StatusCode: res.StatusCode}
	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	return apiErr
}
