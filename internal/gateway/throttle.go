package gateway

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle gates outgoing calls. Wait blocks until the next call may start.
type Throttle interface {
	Wait(ctx context.Context) error
}

// NoThrottle lets every call through immediately.
type NoThrottle struct{}

func (NoThrottle) Wait(ctx context.Context) error {
	return ctx.Err()
}

// intervalThrottle enforces a minimum interval between consecutive calls. It is
// safe to share between goroutines; concurrent callers queue on the limiter.
type intervalThrottle struct {
	limiter *rate.Limiter
}

// NewIntervalThrottle returns a Throttle that spaces calls at least interval
// apart. A non-positive interval disables throttling.
func NewIntervalThrottle(interval time.Duration) Throttle {
	if interval <= 0 {
		return NoThrottle{}
	}
	return &intervalThrottle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (t *intervalThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
