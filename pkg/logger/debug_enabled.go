//go:build effortlessdebug

package logger

const debugEnabled = true

// Debugf logs a debug line. Active because the build carries the
// "effortlessdebug" tag.
func (l *Logger) Debugf(format string, args ...any) {
	l.print(levelDebug, nil, format, args...)
}
