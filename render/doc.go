// Package render turns diagnostics into human-readable reports.
//
// Graphical produces a boxed, optionally colorized report with the
// cause chain drawn as connectors; Narratable produces plain prose
// carrying the same information, suitable for screen readers and logs.
package render
