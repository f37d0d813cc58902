package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/grid/internal/adapters/telemetry"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return telemetry.NewOTelTracerWithProvider(tp, "test"), sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOTelTracer_StartWithAttributes(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(t.Context(), "script",
		ports.WithAttribute("script.name", "budget"),
		ports.WithAttribute("script.steps", 3),
	)
	span.SetAttribute("cell", domain.Position{Row: 0, Col: 1})
	span.SetAttribute("keep_going", true)
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("labels", []string{"A1", "B1"})
	span.SetAttribute("count", int64(7))
	span.SetAttribute("mode", domain.PrintTexts)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "script", spans[0].Name())

	got := attrs(spans[0])
	assert.Equal(t, "budget", got["script.name"].AsString())
	assert.Equal(t, int64(3), got["script.steps"].AsInt64())
	assert.Equal(t, "B1", got["cell"].AsString())
	assert.True(t, got["keep_going"].AsBool())
	assert.InDelta(t, 0.5, got["ratio"].AsFloat64(), 1e-9)
	assert.Equal(t, []string{"A1", "B1"}, got["labels"].AsStringSlice())
	assert.Equal(t, int64(7), got["count"].AsInt64())
	assert.Equal(t, "texts", got["mode"].AsString())
}

func TestOTelSpan_RecordError(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(t.Context(), "step")
	span.RecordError(errors.New("circular dependency"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "circular dependency", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelSpan_Write(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(t.Context(), "print")
	n, err := span.Write([]byte("1\t2\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	span.End()

	events := sr.Ended()[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "log", events[0].Name)
	assert.Equal(t, "1\t2\n", events[0].Attributes[0].Value.AsString())
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	// Without a span in the context nothing is recorded.
	tracer.EmitPlan(t.Context(), []string{"budget"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(t.Context(), "run")
	tracer.EmitPlan(ctx, []string{"budget", "totals"})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, []string{"budget", "totals"}, events[0].Attributes[0].Value.AsStringSlice())
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	ctx, parent := tracer.Start(t.Context(), "run")
	_, child := tracer.Start(ctx, "script")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := t.Context()

	got, span := tracer.Start(ctx, "anything", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("log"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	span.End()
	tracer.EmitPlan(ctx, []string{"budget"})
}
