package otel_test

import (
	"airbnc/config"
	"airbnc/infras/otel"
	"airbnc/shared/failure"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "airbnc-test"

	ot := otel.New(cfg)
	t.Cleanup(func() { _ = ot.Shutdown(context.Background()) })

	ctx, scope := ot.NewScope(context.Background(), "test", "test.span")
	defer scope.End()

	span := oteltrace.SpanFromContext(ctx)
	require.True(t, span.SpanContext().IsValid())

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"bool":    true,
			"string":  "value",
			"int":     1,
			"int64":   int64(2),
			"float":   1.5,
			"strings": []string{"a"},
			"other":   struct{}{},
		})
		scope.AddEvent("event")
		scope.TraceIfError(nil)
		scope.TraceError(errors.New("boom"))
		scope.TraceError(nil)
	})
}

func TestScope_TraceError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, clientSpan := provider.Tracer("test").Start(context.Background(), "client")
	scope := otel.NewScope(clientSpan)
	scope.TraceIfError(fmt.Errorf("get property: %w", failure.NotFound("Property not found")))
	scope.End()

	_, serverSpan := provider.Tracer("test").Start(context.Background(), "server")
	scope = otel.NewScope(serverSpan)
	scope.TraceIfError(errors.New("connection reset"))
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "client_failure", ended[0].Events()[0].Name)

	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "connection reset", ended[1].Status().Description)
}
