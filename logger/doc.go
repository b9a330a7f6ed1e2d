// Package logger implements the terminal log sink: colorized,
// verbosity-filtered, human-readable lines on standard error.
//
// Build a Logger with the Builder, then register it process-wide:
//
//	ok := logger.NewBuilder().
//		WithVerbosity(diaglog.SeverityDebug).
//		WithTimeFormat(logger.TimeElapsed).
//		Create().
//		Init()
//
// Init installs the sink as the slog default handler, so both slog
// calls and diaglog's Error.Log flow through it. Only the first Init in
// a process wins; later calls are no-ops.
//
// Records are filtered by target prefix. The target is conventionally a
// package-qualified module path; slog callers set it with WithGroup.
package logger
