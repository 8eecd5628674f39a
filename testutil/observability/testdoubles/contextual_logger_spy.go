package testdoubles

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/linq-quiz-go/shell"
)

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level      string
	Message    string
	Args       []any
	Context    context.Context
	Contextual bool // false for calls through the basic Logger interface
}

// Attr returns the value logged for key, or nil if the key was not logged.
func (r SpyLogRecord) Attr(key string) any {
	for i := 0; i+1 < len(r.Args); i += 2 {
		if r.Args[i] == key {
			return r.Args[i+1]
		}
	}

	return nil
}

// ContextualLoggerSpy captures calls to both the ContextualLogger and the Logger interface.
type ContextualLoggerSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, true, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, true, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, true, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, true, "error", msg, args)
}

// Debug implements the Logger interface.
func (s *ContextualLoggerSpy) Debug(msg string, args ...any) {
	s.record(context.TODO(), false, "debug", msg, args)
}

// Info implements the Logger interface.
func (s *ContextualLoggerSpy) Info(msg string, args ...any) {
	s.record(context.TODO(), false, "info", msg, args)
}

// Warn implements the Logger interface.
func (s *ContextualLoggerSpy) Warn(msg string, args ...any) {
	s.record(context.TODO(), false, "warn", msg, args)
}

// Error implements the Logger interface.
func (s *ContextualLoggerSpy) Error(msg string, args ...any) {
	s.record(context.TODO(), false, "error", msg, args)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, contextual bool, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{
		Level:      level,
		Message:    msg,
		Args:       append([]any(nil), args...),
		Context:    ctx,
		Contextual: contextual,
	})
}

// GetRecords returns a copy of all log records.
func (s *ContextualLoggerSpy) GetRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.records...)
}

// FindLog returns the first record with the given level and message.
func (s *ContextualLoggerSpy) FindLog(level, message string) (SpyLogRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return record, true
		}
	}

	return SpyLogRecord{}, false
}

// HasInfoLog checks if an info log with the specified message exists.
func (s *ContextualLoggerSpy) HasInfoLog(message string) bool {
	_, found := s.FindLog("info", message)
	return found
}

// HasErrorLog checks if an error log with the specified message exists.
func (s *ContextualLoggerSpy) HasErrorLog(message string) bool {
	_, found := s.FindLog("error", message)
	return found
}

// Compile-time checks to ensure ContextualLoggerSpy implements both logger interfaces.
var (
	_ shell.ContextualLogger = (*ContextualLoggerSpy)(nil)
	_ shell.Logger           = (*ContextualLoggerSpy)(nil)
)
