package main

import (
	"context"
	"fmt"

	"github.com/Quarmire/chord/chord"
	"github.com/Quarmire/chord/config"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func initTracer(cfg config.TracingConfig, logger logr.Logger) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	// Create the Jaeger exporter
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("create jaeger exporter: %w", err)
	}

	instance := uuid.NewString()

	// Create the trace provider
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceInstanceIDKey.String(instance),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	logger.Info("tracing enabled", "endpoint", cfg.JaegerEndpoint, "instance", instance)

	return tp.Shutdown, nil
}

// registerRingMetrics reports the membership count through the global meter provider.
func registerRingMetrics(core chord.Core) error {
	meter := otel.Meter("github.com/Quarmire/chord")
	_, err := meter.Int64ObservableGauge("chord.ring.size",
		metric.WithDescription("Live nodes on the ring"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			ids, err := core.GetRing(ctx)
			if err != nil {
				return err
			}
			o.Observe(int64(len(ids)))
			return nil
		}))
	return err
}
