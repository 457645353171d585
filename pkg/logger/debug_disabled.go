//go:build !effortlessdebug

package logger

const debugEnabled = false

// Debugf is a no-op in builds without the "effortlessdebug" tag. The empty
// body lets the compiler eliminate the call and its arguments entirely.
func (l *Logger) Debugf(format string, args ...any) {}
