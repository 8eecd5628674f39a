// Package testdoubles provides test doubles (spies) for the observability interfaces in package shell.
//
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures tracing spans with their start and finish attributes
//   - ContextualLoggerSpy: captures structured logging with context
//   - LogHandlerSpy: a slog.Handler capturing records, for wiring a real *slog.Logger in tests
//
// All spies are safe for concurrent use.
package testdoubles
