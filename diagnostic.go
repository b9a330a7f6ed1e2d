package diaglog

// Diagnostic is the capability surface consumed by report renderers.
// Renderers walk the value's display rendering and error chain, decorate
// with code, help, url and severity when present, and recurse into
// related diagnostics.
type Diagnostic interface {
	error

	// Code returns a short stable identifier for the failure origin.
	Code() string
	// Severity returns the diagnostic severity, if one was set.
	Severity() (Severity, bool)
	// Help returns a human hint, or "" when absent.
	Help() string
	// URL returns a reference URL, or "" when absent.
	URL() string
	// Related returns sibling diagnostics, or nil when there are none.
	Related() []Diagnostic
}

// Reporter collapses a diagnostic into a serializable Error record. It
// lets non-generic code convert any Failure without knowing its action
// type.
type Reporter interface {
	ToError() *Error
}
