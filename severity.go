package diaglog

import (
	"log/slog"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Severity is an ordered verbosity level.
//
// SeveritySilent filters everything; SeverityTrace lets everything
// through. The numeric rank is stable: a record is dropped when its
// severity is numerically greater than the configured threshold.
type Severity int

const (
	SeveritySilent Severity = iota
	SeverityError
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityTrace
)

// DefaultSeverity is the threshold used when none is configured.
const DefaultSeverity = SeverityInfo

// LevelTrace is the slog level carried by trace records. The slog
// facade has no trace level of its own; by convention sinks place it
// one step below debug.
const LevelTrace = slog.LevelDebug - 4

// levelSilent sits above any level a record realistically carries, so a
// Silent threshold maps outward to "filter everything off".
const levelSilent = slog.Level(1 << 10)

func (s Severity) String() string {
	switch s {
	case SeveritySilent:
		return "silent"
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	case SeverityTrace:
		return "trace"
	}
	return "unknown"
}

// ParseSeverity parses the textual form produced by String.
func ParseSeverity(s string) (Severity, error) {
	for sev := SeveritySilent; sev <= SeverityTrace; sev++ {
		if sev.String() == s {
			return sev, nil
		}
	}
	return DefaultSeverity, errors.Errorf("unknown severity %q", s)
}

// ID returns the four-letter identifier used in log line prefixes.
// Silent never appears on a log line and has no identifier.
func (s Severity) ID() string {
	switch s {
	case SeverityError:
		return "ERRO"
	case SeverityWarn:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBU"
	case SeverityTrace:
		return "TRAC"
	}
	return ""
}

// Icon returns the glyph printed after the identifier.
func (s Severity) Icon() string {
	switch s {
	case SeverityError:
		return "✖"
	case SeverityWarn:
		return "⚠"
	case SeverityInfo:
		return "ℹ"
	case SeverityDebug:
		return "◦"
	case SeverityTrace:
		return "·"
	}
	return ""
}

// Level maps the severity to its slog facade level. Silent has no
// facade level of its own and maps to a level above everything, which
// as a threshold disables all output.
func (s Severity) Level() slog.Level {
	switch s {
	case SeveritySilent:
		return levelSilent
	case SeverityError:
		return slog.LevelError
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityDebug:
		return slog.LevelDebug
	}
	return LevelTrace
}

// SeverityFromLevel maps an slog facade level to a severity. Levels
// below debug map to trace; Silent is never produced.
func SeverityFromLevel(level slog.Level) Severity {
	switch {
	case level >= slog.LevelError:
		return SeverityError
	case level >= slog.LevelWarn:
		return SeverityWarn
	case level >= slog.LevelInfo:
		return SeverityInfo
	case level >= slog.LevelDebug:
		return SeverityDebug
	}
	return SeverityTrace
}

// MarshalYAML encodes the severity as its textual form.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes the textual form.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	return s.SetValue(value)
}

// SetValue parses the textual form in place. It satisfies the setter
// contract used by environment-based config loaders.
func (s *Severity) SetValue(value string) error {
	sev, err := ParseSeverity(value)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
