package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/deixis/diaglog"
)

// packageName is the sink's own target prefix. It is appended to any
// include filter list so the sink can always report on itself.
const packageName = "github.com/deixis/diaglog"

// Logger formats and writes filtered log lines to its output stream,
// standard error by default. Each line has the form
//
//	{time_prefix}{severity_id} {icon} {message}
type Logger struct {
	opts  Options
	out   io.Writer
	start time.Time
}

// New returns a Logger writing to standard error.
func New(opts Options) *Logger {
	return &Logger{
		opts:  opts,
		out:   os.Stderr,
		start: time.Now(),
	}
}

// Enabled reports whether a record with this severity and target passes
// the configured filters.
func (l *Logger) Enabled(severity diaglog.Severity, target string) bool {
	return !l.excludeByTarget(target) && !l.excludeByVerbosity(severity)
}

// Log writes one formatted line for the record. Records that do not
// pass the filters are dropped.
func (l *Logger) Log(severity diaglog.Severity, target, message string) {
	if !l.Enabled(severity, target) {
		return
	}
	fmt.Fprintln(l.out, l.FormatPrefix(severity)+" "+formatMessage(severity, message))
}

// FormatPrefix returns the `{time_prefix}{severity_id} {icon}` part of
// a log line.
func (l *Logger) FormatPrefix(severity diaglog.Severity) string {
	id := severityText(severity).Sprint(severity.ID())
	return l.formatTime() + id + " " + severity.Icon()
}

func (l *Logger) formatTime() string {
	var value string
	switch l.opts.timeFormat() {
	case TimeLocal:
		value = time.Now().Format("2006-01-02 15:04:05.000 ")
	case TimeUTC:
		value = time.Now().UTC().Format("2006-01-02 15:04:05.000") + "Z "
	case TimeElapsed:
		value = fmt.Sprintf("%8.3f ", time.Since(l.start).Seconds())
	case TimeNone:
		return ""
	}
	return DarkGray(value)
}

// excludeByTarget applies the prefix filters: exclusions first, then,
// when include filters are set, the target must start with at least one
// of the include prefixes augmented with the sink's own package.
func (l *Logger) excludeByTarget(target string) bool {
	for _, prefix := range l.opts.ExcludeFilters {
		if strings.HasPrefix(target, prefix) {
			return true
		}
	}
	if len(l.opts.IncludeFilters) == 0 {
		return false
	}
	include := append([]string{packageName}, l.opts.IncludeFilters...)
	for _, prefix := range include {
		if strings.HasPrefix(target, prefix) {
			return false
		}
	}
	return true
}

func (l *Logger) excludeByVerbosity(severity diaglog.Severity) bool {
	return severity > l.opts.verbosity()
}

func formatMessage(severity diaglog.Severity, message string) string {
	if severity >= diaglog.SeverityDebug {
		return dimText.Sprint(message)
	}
	return message
}
