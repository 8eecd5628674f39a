package oteladapters_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/AntonStoeckl/linq-quiz-go/shell"
	"github.com/AntonStoeckl/linq-quiz-go/shell/oteladapters"
)

func Test_NewSlogBridgeLogger_SatisfiesBothLoggerInterfaces(t *testing.T) {
	// act
	logger := oteladapters.NewSlogBridgeLogger("test")

	// assert
	require.NotNil(t, logger)
	assert.Implements(t, (*shell.Logger)(nil), logger)
	assert.Implements(t, (*shell.ContextualLogger)(nil), logger)
	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), shell.LogMsgQueryStarted, shell.LogAttrQueryType, "Squares")
	})
}

func Test_RecordLogger_EmitsRecordsWithSeverityAndAttributes(t *testing.T) {
	// arrange
	sink := newRecordingLogger()
	logger := oteladapters.NewRecordLogger(sink)

	// act
	logger.ErrorContext(context.Background(), shell.LogMsgQueryFailed,
		shell.LogAttrQueryType, "Squares",
		shell.LogAttrResultSize, 3,
		shell.LogAttrError, errors.New("arithmetic overflow"),
	)
	logger.Info(shell.LogMsgQueryStarted)

	// assert
	records := sink.Records()
	require.Len(t, records, 2)

	assert.Equal(t, log.SeverityError, records[0].Severity)
	assert.Equal(t, shell.LogMsgQueryFailed, records[0].Body)
	assert.Equal(t, "Squares", records[0].Attrs[shell.LogAttrQueryType].AsString())
	assert.Equal(t, int64(3), records[0].Attrs[shell.LogAttrResultSize].AsInt64())
	assert.Equal(t, "arithmetic overflow", records[0].Attrs[shell.LogAttrError].AsString())

	assert.Equal(t, log.SeverityInfo, records[1].Severity)
	assert.Equal(t, shell.LogMsgQueryStarted, records[1].Body)
	assert.Empty(t, records[1].Attrs)
}

func Test_ToLogAttributes_DropsMalformedPairs(t *testing.T) {
	// act
	attrs := oteladapters.ToLogAttributes([]any{"ok", true, 42, "ignored", "dangling"})

	// assert
	require.Len(t, attrs, 1)
	assert.Equal(t, "ok", attrs[0].Key)
	assert.True(t, attrs[0].Value.AsBool())
}

// capturedRecord holds a copy of an emitted record; log.Record may share attribute storage with the caller.
type capturedRecord struct {
	Severity log.Severity
	Body     string
	Attrs    map[string]log.Value
}

type recordingLogger struct {
	log.Logger

	mu      sync.Mutex
	records []capturedRecord
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: noop.NewLoggerProvider().Logger("test")}
}

func (l *recordingLogger) Emit(_ context.Context, record log.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	captured := capturedRecord{
		Severity: record.Severity(),
		Body:     record.Body().AsString(),
		Attrs:    make(map[string]log.Value, record.AttributesLen()),
	}
	record.WalkAttributes(func(kv log.KeyValue) bool {
		captured.Attrs[kv.Key] = kv.Value
		return true
	})

	l.records = append(l.records, captured)
}

func (l *recordingLogger) Records() []capturedRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]capturedRecord(nil), l.records...)
}
