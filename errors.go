package footballdata

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
)

// ErrUnsupportedOperation is returned by fetch paths the API does not offer
// (players and standings cannot be fetched by id or listed directly).
var ErrUnsupportedOperation = errors.New("football-data: unsupported operation")

// ErrInvalidID is returned when fetching by a non-positive id.
var ErrInvalidID = errors.New("football-data: id must be positive")

// ErrInvalidBody is returned when the API answers 2xx with a non-JSON body.
var ErrInvalidBody = gateway.ErrInvalidBody

// TransportError reports a network failure or a non-2xx response.
type TransportError = gateway.TransportError

// RateLimitError reports a 429 response; it unwraps to a TransportError.
type RateLimitError = gateway.RateLimitError

// MalformedRecordError reports a record whose shape does not allow the
// requested read: a missing link, an href without a trailing id, or a body
// that does not decode.
type MalformedRecordError struct {
	Relation string
	Href     string
	Reason   string
	Err      error
}

func (e *MalformedRecordError) Error() string {
	msg := "football-data: malformed record"
	if e.Relation != "" {
		msg += fmt.Sprintf(" (relation %q)", e.Relation)
	}
	if e.Href != "" {
		msg += fmt.Sprintf(" (href %q)", e.Href)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
