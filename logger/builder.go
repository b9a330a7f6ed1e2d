package logger

import (
	"io"

	"github.com/deixis/diaglog"
)

// Builder assembles a Logger fluently.
type Builder struct {
	opts Options
	out  io.Writer
}

// NewBuilder returns a builder with default options.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithOptions sets all options from an Options struct.
func (b *Builder) WithOptions(opts Options) *Builder {
	b.opts = opts
	return b
}

// WithVerbosity sets the verbosity threshold.
func (b *Builder) WithVerbosity(verbosity diaglog.Severity) *Builder {
	b.opts.Verbosity = &verbosity
	return b
}

// WithTimeFormat sets the timestamp format.
func (b *Builder) WithTimeFormat(format TimeFormat) *Builder {
	b.opts.TimeFormat = &format
	return b
}

// WithIncludeFilter adds a target prefix to include.
func (b *Builder) WithIncludeFilter(prefix string) *Builder {
	b.opts.IncludeFilters = append(b.opts.IncludeFilters, prefix)
	return b
}

// WithExcludeFilter adds a target prefix to exclude.
func (b *Builder) WithExcludeFilter(prefix string) *Builder {
	b.opts.ExcludeFilters = append(b.opts.ExcludeFilters, prefix)
	return b
}

// WithOutput redirects the sink away from standard error.
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.out = w
	return b
}

// Create builds the configured Logger.
func (b *Builder) Create() *Logger {
	l := New(b.opts)
	if b.out != nil {
		l.out = b.out
	}
	return l
}
