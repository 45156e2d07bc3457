package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidBody is returned when a 2xx response does not carry JSON.
var ErrInvalidBody = errors.New("football-data: response body is not valid JSON")

// TransportError reports a network failure or a non-2xx response.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int // zero when the request never got a response
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("football-data: %s %s: %v", e.Method, e.URL, e.Err)
	}
	msg := fmt.Sprintf("football-data: %s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimitError captures 429 responses from the API.
type RateLimitError struct {
	*TransportError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %s)", e.TransportError.Error(), e.RetryAfter)
	}
	return e.TransportError.Error()
}

func (e *RateLimitError) Unwrap() error {
	return e.TransportError
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

func parseRetryAfter(h http.Header, now time.Time) time.Duration {
	raw := strings.TrimSpace(h.Get("Retry-After"))
	if raw == "" {
		// football-data also reports the reset window in its own header.
		raw = strings.TrimSpace(h.Get("X-RequestCounter-Reset"))
	}
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
