// Package timing measures elapsed time of repeated code regions.
//
// A Timer accumulates per-region statistics (count, mean, standard
// deviation, extrema) across Start/Stop cycles, and composes into a tree of
// named sub-regions via Nest. The rendered report shows each node's share of
// its parent's total elapsed time.
//
// Timers are not safe for concurrent use: Start and Stop are a non-atomic
// read-modify-write pair, so callers sharing a timer across goroutines must
// provide external mutual exclusion. Sibling timers are independent and need
// no coordination.
package timing

import (
	"time"

	"github.com/effortless-go/effortless/pkg/stats"
)

// Timer times a code region and owns an ordered set of nested sub-timers.
type Timer struct {
	stat *stats.Statistic

	// startTime is the pending start of the region being measured.
	// The zero value means the timer is not currently timing.
	startTime time.Time

	// children are owned sub-timers in insertion order, which is also
	// their display order in reports.
	children []*Timer

	// getNow allows stubbing out [time.Now] in tests.
	getNow func() time.Time
}

// New creates a timer with the given display name.
func New(name string) *Timer {
	return &Timer{
		stat:   stats.New(name),
		getNow: time.Now,
	}
}

// Start records the current monotonic timestamp as the pending start.
//
// Starting an already started timer discards the earlier start.
func (t *Timer) Start() {
	t.startTime = t.getNow()
}

// Stop feeds the elapsed seconds since the pending start into the timer's
// statistics and returns the updated mean region time in seconds.
//
// Stop immediately re-records "now" as the new pending start, so repeated
// Stop calls act as a lap timer without an explicit re-Start.
//
// Calling Stop without a pending start is a no-op that returns the current
// mean; no sample is recorded.
//
// Note that the return value is the running mean, not this call's elapsed
// duration.
func (t *Timer) Stop() float64 {
	if t.startTime.IsZero() {
		return t.stat.Mean()
	}

	now := t.getNow()
	elapsed := now.Sub(t.startTime).Seconds()
	t.startTime = now

	return t.stat.Add(elapsed)
}

// Nest creates a sub-timer, appends it to this timer's children and returns
// it. The parent owns the child; the child's display order is its insertion
// order.
func (t *Timer) Nest(name string) *Timer {
	child := &Timer{
		stat:   stats.New(name),
		getNow: t.getNow,
	}
	t.children = append(t.children, child)

	return child
}

// Reset clears the pending start and the accumulated statistics.
// Nested sub-timers are kept and left untouched.
func (t *Timer) Reset() {
	t.startTime = time.Time{}
	t.stat.Reset()
}

// Children returns the owned sub-timers in insertion order.
// The returned slice must not be modified.
func (t *Timer) Children() []*Timer {
	return t.children
}

// Name returns the display label.
func (t *Timer) Name() string { return t.stat.Name() }

// Count returns the number of recorded samples.
func (t *Timer) Count() int { return t.stat.Count() }

// Mean returns the mean region time in seconds.
func (t *Timer) Mean() float64 { return t.stat.Mean() }

// Std returns the sample standard deviation of the region time in seconds.
func (t *Timer) Std() float64 { return t.stat.Std() }

// Min returns the shortest recorded region time in seconds.
func (t *Timer) Min() float64 { return t.stat.Min() }

// Max returns the longest recorded region time in seconds.
func (t *Timer) Max() float64 { return t.stat.Max() }

// Last returns the most recently recorded region time in seconds.
func (t *Timer) Last() float64 { return t.stat.Last() }

// Total returns the accumulated region time in seconds.
func (t *Timer) Total() float64 { return t.stat.Sum() }
