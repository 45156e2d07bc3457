package teststubs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/preston-bernstein/football-data-client/internal/gateway"
)

// StubGateway is a test double for the HTTP gateway. Responses are keyed by
// request path ("/teams/66"); every call is recorded.
type StubGateway struct {
	Responses map[string]string
	Err       error

	mu       sync.Mutex
	requests []gateway.Request
}

// Get returns the canned response for the request path and records the call.
func (s *StubGateway) Get(ctx context.Context, r gateway.Request) (json.RawMessage, error) {
	_ = ctx
	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	body, ok := s.Responses[r.Path()]
	if !ok {
		return nil, fmt.Errorf("stub gateway: no response for %s", r.Path())
	}
	return json.RawMessage(body), nil
}

// Calls returns how many requests were made.
func (s *StubGateway) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// CallsTo returns how many requests were made for the given path.
func (s *StubGateway) CallsTo(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Path() == path {
			n++
		}
	}
	return n
}

// Requests returns a copy of the recorded requests in call order.
func (s *StubGateway) Requests() []gateway.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]gateway.Request(nil), s.requests...)
}
