// Package tracing sets up the OpenTelemetry tracer provider. Without an
// OTLP endpoint the global provider stays a no-op.
package tracing

import (
	"context"

	"github.com/dmitrijs2005/macreserve/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(context.Context) error

// Init exports spans over OTLP/HTTP to endpoint (host:port).
func Init(ctx context.Context, logger logging.Logger, endpoint, serviceName string) (ShutdownFunc, error) {
	if endpoint == "" {
		logger.Info(ctx, "tracing disabled: no OTLP endpoint")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logger.Info(ctx, "tracing initialized", "endpoint", endpoint)
	return tp.Shutdown, nil
}
