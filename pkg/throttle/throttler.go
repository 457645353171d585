// Package throttle limits repeated calls to a fixed interval.
//
// It is meant for hot paths that want to emit something (a log line, a
// report) at most once per period while being called far more often.
package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttler admits at most one call per period. The first call is always
// admitted.
type Throttler struct {
	limiter *rate.Limiter
}

// New creates a throttler with the given minimum interval between
// admitted calls.
func New(period time.Duration) *Throttler {
	return &Throttler{
		limiter: rate.NewLimiter(rate.Every(period), 1),
	}
}

// Do runs f if at least one period has elapsed since the last admitted
// call, and reports whether it ran.
func (th *Throttler) Do(f func()) bool {
	if !th.limiter.Allow() {
		return false
	}

	f()

	return true
}
