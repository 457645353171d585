// Package logger provides a name-tagged, optionally colorized line logger
// for consoles and files.
//
// Every line is prefixed by a padded "[name] " tag so that output from
// several components stays readable when interleaved. It doubles as the
// report sink for the timing package: its Println method satisfies
// timing.ReportSink.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

const (
	levelInfo    = "Info:    "
	levelWarning = "Warning: "
	levelError   = "Error:   "
	levelFatal   = "Fatal:   "
	levelDebug   = "Debug:   "
)

// Params are optional construction parameters for a Logger.
type Params struct {
	// Out is the sink lines are written to. Defaults to os.Stdout.
	Out io.Writer

	// Settings overrides DefaultSettings.
	Settings *Settings
}

// Logger writes name-tagged lines to an explicit sink.
//
// It is not safe for concurrent use.
type Logger struct {
	out      io.Writer
	output   *termenv.Output
	settings Settings
	tag      string

	// start anchors relative timestamps.
	start time.Time

	// getNow allows stubbing out [time.Now] in tests.
	getNow func() time.Time
}

// New creates a logger with the given name tag.
func New(name string, params *Params) *Logger {
	if params == nil {
		params = &Params{}
	}

	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	settings := DefaultSettings()
	if params.Settings != nil {
		settings = *params.Settings
	}

	profile := termenv.Ascii
	if settings.Colored {
		profile = termenv.ANSI
	}

	return &Logger{
		out:      out,
		output:   termenv.NewOutput(out, termenv.WithProfile(profile)),
		settings: settings,
		tag:      padName(name, settings.NamePadding),
		start:    time.Now(),
		getNow:   time.Now,
	}
}

// Infof logs an informational line.
func (l *Logger) Infof(format string, args ...any) {
	l.print(levelInfo, nil, format, args...)
}

// Warnf logs a warning line, yellow when colors are enabled.
func (l *Logger) Warnf(format string, args ...any) {
	l.print(levelWarning, termenv.ANSIYellow, format, args...)
}

// Errorf logs an error line, red when colors are enabled.
func (l *Logger) Errorf(format string, args ...any) {
	l.print(levelError, termenv.ANSIRed, format, args...)
}

// Fatalf logs a fatal line and panics with the formatted message.
func (l *Logger) Fatalf(format string, args ...any) {
	l.print(levelFatal, termenv.ANSIRed, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// DebugEnabled reports whether the build carries the active debug sink
// (the "effortlessdebug" build tag).
func (l *Logger) DebugEnabled() bool {
	return debugEnabled
}

// Println writes a tagged line without a level prefix. Multi-line text is
// tagged once, at the start.
func (l *Logger) Println(text string) {
	fmt.Fprintln(l.out, l.tag+text)
}

// Newline writes n blank lines.
func (l *Logger) Newline(n int) {
	for i := 0; i < n; i++ {
		fmt.Fprintln(l.out)
	}
}

// Name returns the padded tag.
func (l *Logger) Name() string {
	return l.tag
}

// Close closes the underlying sink when it is closable, such as a file.
func (l *Logger) Close() error {
	if closer, ok := l.out.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (l *Logger) print(level string, color termenv.Color, format string, args ...any) {
	var sb strings.Builder
	sb.WriteString(l.tag)

	// The color stands in for the textual level prefix.
	if !l.settings.Colored {
		sb.WriteString(level)
	}

	if l.settings.Timed {
		now := l.getNow()
		if l.settings.RelativeTime {
			fmt.Fprintf(&sb, "%ds  ", int(now.Sub(l.start).Seconds()))
		} else {
			sb.WriteString(now.Format(l.settings.TimeFormat))
			sb.WriteString("  ")
		}
	}

	fmt.Fprintf(&sb, format, args...)

	line := sb.String()
	if l.settings.Colored && color != nil {
		line = l.output.String(line).Foreground(color).String()
	}

	fmt.Fprintln(l.out, line)
}

func padName(name string, padding int) string {
	if name == "" {
		return ""
	}

	tag := "[" + name + "] "
	if extra := padding - len(tag); extra > 0 {
		tag += strings.Repeat(" ", extra)
	}

	return tag
}
