package logger

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/deixis/diaglog"
)

// Options configures a Logger. The zero value leaves every setting at
// its default. Options are YAML-serializable and can be loaded from a
// file with ReadOptions.
type Options struct {
	// Verbosity is the level of logs to display.
	//
	// Default: `info`
	Verbosity *diaglog.Severity `yaml:"verbosity,omitempty"`

	// TimeFormat is the timestamp format to use in logs.
	//
	// Default: `local`
	TimeFormat *TimeFormat `yaml:"log_time_format,omitempty"`

	// IncludeFilters keeps only records whose target starts with one of
	// these prefixes. The sink's own package is always included.
	IncludeFilters []string `yaml:"log_include_filters,omitempty" env:"LOG_INCLUDE_FILTERS"`

	// ExcludeFilters drops records whose target starts with one of
	// these prefixes.
	ExcludeFilters []string `yaml:"log_exclude_filters,omitempty" env:"LOG_EXCLUDE_FILTERS"`
}

func (o Options) verbosity() diaglog.Severity {
	if o.Verbosity == nil {
		return diaglog.DefaultSeverity
	}
	return *o.Verbosity
}

func (o Options) timeFormat() TimeFormat {
	if o.TimeFormat == nil {
		return TimeLocal
	}
	return *o.TimeFormat
}

// ReadOptions loads sink options from a YAML file, with environment
// variables taking precedence over file values.
func ReadOptions(path string) (Options, error) {
	var opts Options
	if err := cleanenv.ReadConfig(path, &opts); err != nil {
		return Options{}, errors.Wrap(err, "read logger options")
	}
	return opts, nil
}
