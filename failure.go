package diaglog

import (
	"strings"

	"github.com/fatih/color"
)

var dimText = color.New(color.Faint)

type contextPair struct {
	key   string
	value string
}

// Failure wraps an action value with the underlying cause and optional
// diagnostic decoration for rich error reporting.
//
// A Failure is assembled with chained builder calls and should be
// treated as immutable once handed to a renderer or stored. It owns its
// source and related diagnostics exclusively; related diagnostics may
// themselves be Failure values, forming a finite tree.
type Failure[A Action] struct {
	action      A
	code        string
	help        string
	url         string
	severity    Severity
	hasSeverity bool
	related     []Diagnostic
	additional  []contextPair
	source      error
}

// New returns a Failure wrapping action and its source error.
func New[A Action](action A, source error) *Failure[A] {
	return &Failure[A]{action: action, source: source}
}

// FromAction returns a Failure with only an action, no source error.
func FromAction[A Action](action A) *Failure[A] {
	return &Failure[A]{action: action}
}

// Wrap returns a one-shot adapter that turns an error into a Failure
// with the given action:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//		return diaglog.Wrap(ReadFile)(err)
//	}
func Wrap[A Action](action A) func(error) *Failure[A] {
	return func(err error) *Failure[A] {
		return New(action, err)
	}
}

// WrapWith is Wrap with a configurator applied to the constructed
// Failure.
func WrapWith[A Action](action A, configure func(*Failure[A]) *Failure[A]) func(error) *Failure[A] {
	return func(err error) *Failure[A] {
		return configure(New(action, err))
	}
}

// WrapWithPath is Wrap with "path" context attached.
func WrapWithPath[A Action](action A, path string) func(error) *Failure[A] {
	return func(err error) *Failure[A] {
		return New(action, err).With("path", path)
	}
}

// Action returns the wrapped action.
func (f *Failure[A]) Action() A {
	return f.action
}

// Get returns the first additional value stored under key.
func (f *Failure[A]) Get(key string) (string, bool) {
	for _, pair := range f.additional {
		if pair.key == key {
			return pair.value, true
		}
	}
	return "", false
}

// With appends a key/value pair of additional context. Repeated keys
// are preserved in insertion order.
func (f *Failure[A]) With(key, value string) *Failure[A] {
	f.additional = append(f.additional, contextPair{key: key, value: value})
	return f
}

// Set stores a key/value pair, replacing the first value under key if
// one exists.
func (f *Failure[A]) Set(key, value string) *Failure[A] {
	for i := range f.additional {
		if f.additional[i].key == key {
			f.additional[i].value = value
			return f
		}
	}
	return f.With(key, value)
}

// WithPath attaches a "path" context entry.
func (f *Failure[A]) WithPath(path string) *Failure[A] {
	return f.With("path", path)
}

// WithCode overrides the synthesised diagnostic code.
//
// Default: `root::path::Action::Variant`
func (f *Failure[A]) WithCode(code string) *Failure[A] {
	f.code = code
	return f
}

// WithHelp sets the help text.
func (f *Failure[A]) WithHelp(help string) *Failure[A] {
	f.help = help
	return f
}

// WithURL sets the URL for more information.
func (f *Failure[A]) WithURL(url string) *Failure[A] {
	f.url = url
	return f
}

// WithSeverity sets the severity level. When unset, renderers treat the
// failure as an error.
func (f *Failure[A]) WithSeverity(severity Severity) *Failure[A] {
	f.severity = severity
	f.hasSeverity = true
	return f
}

// WithRelated appends a related diagnostic: a sibling failure that is
// causally parallel rather than a parent cause.
func (f *Failure[A]) WithRelated(d Diagnostic) *Failure[A] {
	f.related = append(f.related, d)
	return f
}

// Error renders "Failed to {action}" followed by one "▷ key: value"
// line per additional entry, in insertion order. The context lines are
// dimmed when color output is on; the logical content is the same
// either way.
func (f *Failure[A]) Error() string {
	var b strings.Builder
	b.WriteString("Failed to ")
	b.WriteString(f.action.String())
	for _, pair := range f.additional {
		b.WriteString("\n")
		b.WriteString(dimText.Sprint("▷ " + pair.key + ": " + pair.value))
	}
	return b.String()
}

// Unwrap returns the source error, if any.
func (f *Failure[A]) Unwrap() error {
	return f.source
}

// Code returns the override set with WithCode, or the code synthesised
// from the action type's identity and the action's variant.
func (f *Failure[A]) Code() string {
	if f.code != "" {
		return f.code
	}
	return shortCode(f.action)
}

// Severity returns the severity set with WithSeverity.
func (f *Failure[A]) Severity() (Severity, bool) {
	return f.severity, f.hasSeverity
}

// Help returns the help text, or "" when absent.
func (f *Failure[A]) Help() string {
	return f.help
}

// URL returns the reference URL, or "" when absent.
func (f *Failure[A]) URL() string {
	return f.url
}

// Related returns the related diagnostics in insertion order, or nil
// when there are none.
func (f *Failure[A]) Related() []Diagnostic {
	if len(f.related) == 0 {
		return nil
	}
	return f.related
}

// ToError collapses the failure into a serializable Error record. The
// message is the immediate source's rendering only; callers that need
// the full chain keep the Failure. The domain is the value of the
// "domain" context entry when present, else the full type identity of
// the action type.
func (f *Failure[A]) ToError() *Error {
	message := ""
	if f.source != nil {
		message = f.source.Error()
	}
	domain, ok := f.Get("domain")
	if !ok {
		domain = typeIdentityName(f.action)
	}
	return &Error{
		Action:  f.action.String(),
		Message: message,
		Domain:  domain,
	}
}
