// Package diaglog provides logs you'll actually want to read.
//
// It has two loosely coupled parts: a terminal log sink that writes
// colorized, filtered, human-readable lines to standard error (see the
// logger subpackage), and a structured failure model for programmatic
// error inspection and human-friendly reports.
//
// The failure model revolves around Failure, a wrapper parameterised
// over an Action describing what the code was attempting when it
// failed. A Failure chains into its causes, carries ordered key/value
// context, and synthesises a stable diagnostic code from the action
// type's identity. It collapses into a plain serializable Error record
// for transport.
package diaglog
