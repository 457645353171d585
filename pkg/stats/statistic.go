// Package stats accumulates running statistics over a stream of samples.
//
// A Statistic tracks the count, mean, standard deviation and extrema of the
// values added to it in O(1) time and space per sample, using Welford's
// online algorithm. It is meant to sit on hot paths: adding a sample never
// allocates and never fails.
//
// Statistics are not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package stats

import (
	"fmt"
	"math"
)

// Statistic holds running statistics of a stream of finite samples.
type Statistic struct {
	name string

	// limit is the maximum count, after which each new sample receives
	// constant weight 1/limit. Zero means unbounded.
	limit int

	count int
	mean  float64
	m2    float64
	last  float64
	min   float64
	max   float64
}

// New creates an unbounded statistic.
func New(name string) *Statistic {
	return NewCapped(name, 0)
}

// NewCapped creates a statistic whose count saturates at limit.
//
// Once saturated, every new sample updates the mean with constant weight
// 1/limit, so the statistic forgets distant history at a fixed rate instead
// of computing a true simple average. A limit < 1 means unbounded.
func NewCapped(name string, limit int) *Statistic {
	if limit < 1 {
		limit = 0
	}

	s := &Statistic{name: name, limit: limit}
	s.Reset()
	return s
}

// Add feeds one sample and returns the updated mean.
//
// Non-finite samples (NaN, ±Inf) leave the statistic unchanged and return
// NaN so that callers can detect the rejection if they care to.
func (s *Statistic) Add(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return math.NaN()
	}

	if s.limit == 0 || s.count < s.limit {
		s.count++
	}

	meanBefore := s.mean
	s.mean += (value - s.mean) / float64(s.count)
	s.m2 += (value - meanBefore) * (value - s.mean)

	s.last = value
	s.min = math.Min(s.min, value)
	s.max = math.Max(s.max, value)

	return s.mean
}

// Mean returns the running mean.
//
// The result is meaningless before the first sample; check Count first.
func (s *Statistic) Mean() float64 {
	return s.mean
}

// Std returns the sample (Bessel-corrected) standard deviation,
// or 0 with fewer than two samples.
func (s *Statistic) Std() float64 {
	if s.count < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count-1))
}

// Sum returns the total of all samples, derived as mean times count.
func (s *Statistic) Sum() float64 {
	return s.mean * float64(s.count)
}

// Min returns the smallest sample seen since the last reset.
func (s *Statistic) Min() float64 {
	return s.min
}

// Max returns the largest sample seen since the last reset.
func (s *Statistic) Max() float64 {
	return s.max
}

// Last returns the most recent sample.
func (s *Statistic) Last() float64 {
	return s.last
}

// Count returns the number of samples, pinned at the cap when one is set.
func (s *Statistic) Count() int {
	return s.count
}

// Name returns the display label.
func (s *Statistic) Name() string {
	return s.name
}

// Reset returns the statistic to its freshly constructed state.
//
// The extrema are set to ±Inf so that the first sample after a reset
// behaves identically to the first sample after construction.
func (s *Statistic) Reset() {
	s.count = 0
	s.mean = 0
	s.m2 = 0
	s.last = 0
	s.min = math.Inf(1)
	s.max = math.Inf(-1)
}

// String renders a one-line summary.
func (s *Statistic) String() string {
	if s.count < 1 {
		return fmt.Sprintf("%-16s has no samples yet", s.name)
	}

	return fmt.Sprintf(
		"%-16s mean|std: %-8.3g | %-8.3g  [min|max: %-8.3g | %-8.3g]",
		s.name, s.Mean(), s.Std(), s.min, s.max)
}
