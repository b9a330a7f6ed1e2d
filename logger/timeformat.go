package logger

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TimeFormat selects the timestamp prefix of each log line.
type TimeFormat int

const (
	// TimeLocal renders local date and time.
	//
	// Example: `2013-02-27 12:34:56.789 `
	TimeLocal TimeFormat = iota
	// TimeUTC renders UTC date and time.
	//
	// Example: `2013-02-27 12:34:56.789Z `
	TimeUTC
	// TimeElapsed renders seconds since the logger was created, with
	// millisecond precision, right-aligned to eight characters.
	//
	// Example: `30020.289 `
	TimeElapsed
	// TimeNone omits the timestamp.
	TimeNone
)

func (t TimeFormat) String() string {
	switch t {
	case TimeLocal:
		return "local"
	case TimeUTC:
		return "utc"
	case TimeElapsed:
		return "elapsed"
	case TimeNone:
		return "none"
	}
	return "unknown"
}

// ParseTimeFormat parses the textual form produced by String.
func ParseTimeFormat(s string) (TimeFormat, error) {
	for t := TimeLocal; t <= TimeNone; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return TimeLocal, errors.Errorf("unknown time format %q", s)
}

// MarshalYAML encodes the time format as its textual form.
func (t TimeFormat) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes the textual form.
func (t *TimeFormat) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	return t.SetValue(value)
}

// SetValue parses the textual form in place. It satisfies the setter
// contract used by environment-based config loaders.
func (t *TimeFormat) SetValue(value string) error {
	format, err := ParseTimeFormat(value)
	if err != nil {
		return err
	}
	*t = format
	return nil
}
