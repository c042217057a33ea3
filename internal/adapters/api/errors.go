package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// NetworkError is a transport failure: the request never produced an HTTP response.
// Caller deadlines and cancellations land here too.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline expiry
func (e *NetworkError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPStatusError is a response with a non-2xx status
type HTTPStatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error (status %d): %s %s", e.Code, e.Method, e.URL)
	}
	return fmt.Sprintf("API error (status %d): %s %s: %s", e.Code, e.Method, e.URL, e.Body)
}

// IsServerError reports a 5xx status
func (e *HTTPStatusError) IsServerError() bool {
	return e.Code >= 500
}

// IsClientError reports a 4xx status
func (e *HTTPStatusError) IsClientError() bool {
	return e.Code >= 400 && e.Code < 500
}

// NotFoundError is a 404 response. It unwraps to its *HTTPStatusError.
type NotFoundError struct {
	*HTTPStatusError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s %s", e.Method, e.URL)
}

func (e *NotFoundError) Unwrap() error {
	return e.HTTPStatusError
}

// DecodeError is a 2xx response whose body is not the expected JSON,
// either malformed or missing required fields
type DecodeError struct {
	Method string
	URL    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response of %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newStatusError(method, url string, code int, body []byte) error {
	statusErr := &HTTPStatusError{
		Method: method,
		URL:    url,
		Code:   code,
		Body:   truncate(string(body), 512),
	}
	if code == http.StatusNotFound {
		return &NotFoundError{HTTPStatusError: statusErr}
	}
	return statusErr
}

// IsNotFound reports whether err is, or wraps, a 404 response
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsServerError reports whether err is, or wraps, a 5xx response
func IsServerError(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr) && statusErr.IsServerError()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
