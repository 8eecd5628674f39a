package oteladapters_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/linq-quiz-go/shell"
	"github.com/AntonStoeckl/linq-quiz-go/shell/oteladapters"
)

func Test_MetricsCollector_RecordDuration_RecordsSecondsHistogram(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	labels := shell.BuildQueryLabels("Squares", shell.StatusSuccess)

	// act
	collector.RecordDurationContext(context.Background(), shell.QueryHandlerDurationMetric, 150*time.Millisecond, labels)

	// assert
	histogram := findFloat64Histogram(t, collect(t, reader), shell.QueryHandlerDurationMetric)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.15, histogram.DataPoints[0].Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String(shell.LogAttrQueryType, "Squares"),
		attribute.String(shell.LogAttrStatus, shell.StatusSuccess),
	)
	assert.True(t, histogram.DataPoints[0].Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter_AddsOnePerCall(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	labels := shell.BuildQueryLabels("EvenNumbers", shell.StatusError)

	// act
	collector.IncrementCounter(shell.QueryHandlerCallsMetric, labels)
	collector.IncrementCounter(shell.QueryHandlerCallsMetric, labels)
	collector.IncrementCounterContext(context.Background(), shell.QueryHandlerCallsMetric, labels)

	// assert
	counter := findInt64Sum(t, collect(t, reader), shell.QueryHandlerCallsMetric)
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
	assert.True(t, counter.IsMonotonic)
}

func Test_MetricsCollector_RecordValue_RecordsDistribution(t *testing.T) {
	// arrange
	reader, collector := givenMetricsCollector()
	labels := shell.BuildQueryLabels("LetterStatistic", shell.StatusSuccess)

	// act
	collector.RecordValue(shell.QueryHandlerResultSizeMetric, 3, labels)
	collector.RecordValueContext(context.Background(), shell.QueryHandlerResultSizeMetric, 26, labels)

	// assert
	histogram := findFloat64Histogram(t, collect(t, reader), shell.QueryHandlerResultSizeMetric)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(2), histogram.DataPoints[0].Count)
	assert.InDelta(t, 29.0, histogram.DataPoints[0].Sum, 1e-9)
}

func Test_MetricsCollector_DoesNotPanic_WhenInstrumentCreationFails(t *testing.T) {
	// arrange
	_, provider := givenMeterProvider()
	collector := oteladapters.NewMetricsCollector(&failingMeter{Meter: provider.Meter("test")})
	ctx := context.Background()

	// act & assert
	assert.NotPanics(t, func() {
		collector.RecordDuration("broken", time.Millisecond, nil)
		collector.RecordDurationContext(ctx, "broken", time.Millisecond, nil)
		collector.IncrementCounter("broken", nil)
		collector.IncrementCounterContext(ctx, "broken", nil)
		collector.RecordValue("broken", 1, nil)
		collector.RecordValueContext(ctx, "broken", 1, nil)
	})
}

/*** Helpers ***/

type failingMeter struct {
	metric.Meter
}

func (m *failingMeter) Float64Histogram(string, ...metric.Float64HistogramOption) (metric.Float64Histogram, error) {
	return nil, errors.New("histogram creation failed")
}

func (m *failingMeter) Int64Counter(string, ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return nil, errors.New("counter creation failed")
}

func givenMeterProvider() (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	reader := sdkmetric.NewManualReader()
	return reader, sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
}

func givenMetricsCollector() (*sdkmetric.ManualReader, *oteladapters.MetricsCollector) {
	reader, provider := givenMeterProvider()
	return reader, oteladapters.NewMetricsCollector(provider.Meter("test"))
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func findFloat64Histogram(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Histogram[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if h, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == name {
				return h
			}
		}
	}

	t.Fatalf("histogram metric %s not found", name)
	return metricdata.Histogram[float64]{}
}

func findInt64Sum(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if s, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == name {
				return s
			}
		}
	}

	t.Fatalf("counter metric %s not found", name)
	return metricdata.Sum[int64]{}
}
