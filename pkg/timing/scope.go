package timing

import "strings"

// ReportSink receives a rendered report at the end of a scope.
//
// It is the only thing the timing core needs from a logger: any receiver of
// a name-tagged line, such as [logger.Logger], satisfies it.
type ReportSink interface {
	Println(text string)
}

// Time runs f and records its elapsed time as one sample.
//
// The sample is recorded on every exit path, including panics.
func (t *Timer) Time(f func()) {
	t.Start()
	defer t.Stop()
	f()
}

// Scoped starts the timer and returns the matching stop function, meant to
// be deferred:
//
//	defer timing.Scoped(t)()
func Scoped(t *Timer) func() {
	t.Start()
	return func() { t.Stop() }
}

// Scope times a region from construction to End and then emits the report
// to an explicit sink.
type Scope struct {
	timer *Timer
	sink  ReportSink
}

// NewScope creates a fresh, already started timer for the region. A nil sink
// suppresses the report; the timing is still recorded and readable through
// Timer.
func NewScope(name string, sink ReportSink) *Scope {
	s := &Scope{
		timer: New(name),
		sink:  sink,
	}
	s.timer.Start()

	return s
}

// Timer returns the scope's underlying timer.
func (s *Scope) Timer() *Timer {
	return s.timer
}

// End stops the timer and writes the rendered report to the sink. Meant to
// be deferred so the report is emitted on every exit path:
//
//	defer timing.NewScope("load", log).End()
func (s *Scope) End() {
	s.timer.Stop()
	if s.sink != nil {
		s.sink.Println(strings.TrimSuffix(s.timer.Report(), "\n"))
	}
}
