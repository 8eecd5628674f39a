package oteladapters

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"

	"github.com/AntonStoeckl/linq-quiz-go/shell"
)

// NewSlogBridgeLogger returns an *slog.Logger backed by the global OpenTelemetry LoggerProvider.
// Records logged with a context that carries a span get its trace and span IDs.
// The result satisfies both shell.Logger and shell.ContextualLogger.
func NewSlogBridgeLogger(name string, opts ...otelslog.Option) *slog.Logger {
	return otelslog.NewLogger(name, opts...)
}

// RecordLogger implements shell.Logger and shell.ContextualLogger by emitting
// OpenTelemetry log records directly.
type RecordLogger struct {
	logger log.Logger
}

// NewRecordLogger creates a RecordLogger emitting to logger.
func NewRecordLogger(logger log.Logger) *RecordLogger {
	return &RecordLogger{logger: logger}
}

// DebugContext implements shell.ContextualLogger.
func (l *RecordLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, msg, args)
}

// InfoContext implements shell.ContextualLogger.
func (l *RecordLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, msg, args)
}

// WarnContext implements shell.ContextualLogger.
func (l *RecordLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, msg, args)
}

// ErrorContext implements shell.ContextualLogger.
func (l *RecordLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, msg, args)
}

// Debug implements shell.Logger.
func (l *RecordLogger) Debug(msg string, args ...any) {
	l.emit(context.Background(), log.SeverityDebug, msg, args)
}

// Info implements shell.Logger.
func (l *RecordLogger) Info(msg string, args ...any) {
	l.emit(context.Background(), log.SeverityInfo, msg, args)
}

// Warn implements shell.Logger.
func (l *RecordLogger) Warn(msg string, args ...any) {
	l.emit(context.Background(), log.SeverityWarn, msg, args)
}

// Error implements shell.Logger.
func (l *RecordLogger) Error(msg string, args ...any) {
	l.emit(context.Background(), log.SeverityError, msg, args)
}

func (l *RecordLogger) emit(ctx context.Context, severity log.Severity, msg string, args []any) {
	var record log.Record
	record.SetSeverity(severity)
	record.SetSeverityText(severity.String())
	record.SetBody(log.StringValue(msg))
	record.AddAttributes(ToLogAttributes(args)...)

	l.logger.Emit(ctx, record)
}

// ToLogAttributes converts slog-style alternating key/value args into OpenTelemetry attributes.
// Pairs with a non-string key and a trailing key without value are dropped.
func ToLogAttributes(args []any) []log.KeyValue {
	attrs := make([]log.KeyValue, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		attrs = append(attrs, toLogKeyValue(key, args[i+1]))
	}

	return attrs
}

func toLogKeyValue(key string, value any) log.KeyValue {
	switch v := value.(type) {
	case string:
		return log.String(key, v)
	case int:
		return log.Int(key, v)
	case int64:
		return log.Int64(key, v)
	case float64:
		return log.Float64(key, v)
	case bool:
		return log.Bool(key, v)
	case error:
		return log.String(key, v.Error())
	default:
		return log.String(key, fmt.Sprint(v))
	}
}

var (
	_ shell.ContextualLogger = (*RecordLogger)(nil)
	_ shell.Logger           = (*RecordLogger)(nil)
)
