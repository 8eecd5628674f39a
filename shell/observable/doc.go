// Package observable provides a wrapper for instrumenting query handlers with
// observability (metrics, tracing, logging) while keeping the query logic pure.
//
// The wrapper is applied externally at wiring time, not hidden inside the handlers:
//
//	// 1. Create the pure handler
//	coreHandler := letterstatistic.NewQueryHandler()
//
//	// 2. Wrap it with observability
//	handler, err := observable.NewQueryWrapper[letterstatistic.Query, letterstatistic.LetterStatistic](
//		coreHandler,
//		observable.WithQueryMetrics[letterstatistic.Query, letterstatistic.LetterStatistic](metricsCollector),
//		observable.WithQueryContextualLogging[letterstatistic.Query, letterstatistic.LetterStatistic](slog.Default()),
//	)
//
//	// 3. Use the wrapped handler
//	result, err := handler.Handle(ctx, letterstatistic.BuildQuery("Hello"))
//
// Every option is independent; a wrapper without options only delegates.
package observable
