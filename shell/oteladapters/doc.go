// Package oteladapters binds the shell observability interfaces to OpenTelemetry.
//
// Query handlers built with the observable wrapper accept these adapters directly:
//
//	handler, err := letterstatistic.NewObservableQueryHandler(
//		observable.WithQueryMetrics[letterstatistic.Query, letterstatistic.LetterStatistic](
//			oteladapters.NewMetricsCollector(meterProvider.Meter("linq-quiz")),
//		),
//		observable.WithQueryTracing[letterstatistic.Query, letterstatistic.LetterStatistic](
//			oteladapters.NewTracingCollector(tracerProvider.Tracer("linq-quiz")),
//		),
//		observable.WithQueryContextualLogging[letterstatistic.Query, letterstatistic.LetterStatistic](
//			oteladapters.NewSlogBridgeLogger("linq-quiz"),
//		),
//	)
package oteladapters
