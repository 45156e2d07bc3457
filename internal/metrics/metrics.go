package metrics

import (
	"sync"
	"time"
)

type resourceStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastStatus      int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls,
// keyed by API resource ("teams", "fixtures", ...). When built by Setup it also
// forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*resourceStats
	throttled time.Duration
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*resourceStats),
		otel:  otel,
	}
}

// RecordUpstreamCall counts one gateway call and stores its status and latency.
func (r *Recorder) RecordUpstreamCall(resource string, status int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(resource)
	stats.calls++
	stats.lastStatus = status
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(resource, status, duration, err)
	}
}

// RecordRateLimit tracks that the API answered 429 and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(resource string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(resource)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(resource, retryAfter)
	}
}

// RecordThrottleWait accumulates time spent blocked on the inter-call gate.
func (r *Recorder) RecordThrottleWait(waited time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.throttled += waited
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordThrottleWait(waited)
	}
}

// Calls returns the total calls recorded for a resource.
func (r *Recorder) Calls(resource string) int {
	return r.Snapshot(resource).Calls
}

// Errors returns the total failed calls recorded for a resource.
func (r *Recorder) Errors(resource string) int {
	return r.Snapshot(resource).Errors
}

// RateLimitHits returns the number of 429 responses seen for a resource.
func (r *Recorder) RateLimitHits(resource string) int {
	return r.Snapshot(resource).RateLimitHits
}

// ThrottleWait returns the total time callers spent waiting on the gate.
func (r *Recorder) ThrottleWait() time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.throttled
}

// Snapshot is a copy of the current stats for a resource.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastStatus      int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(resource string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[resource]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastStatus:      stats.lastStatus,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(resource string) *resourceStats {
	stats, ok := r.stats[resource]
	if !ok {
		stats = &resourceStats{}
		r.stats[resource] = stats
	}
	return stats
}
