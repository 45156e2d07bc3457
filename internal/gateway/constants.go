package gateway

import "time"

const (
	defaultBaseURL     = "http://api.football-data.org/alpha"
	defaultHTTPTimeout = 10 * time.Second
	authHeader         = "X-Auth-Token"
	requestIDHeader    = "X-Request-ID"
	maxErrorBody       = 512
)
