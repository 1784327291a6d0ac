package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KasumiMercury/primind-car-care/internal/observability/logging"
	"github.com/KasumiMercury/primind-car-care/internal/observability/metrics"
	"github.com/KasumiMercury/primind-car-care/internal/observability/tracing"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
	LogLevel      slog.Level
	// LogOutput defaults to stdout when nil.
	LogOutput io.Writer
}

type Resources struct {
	Tracer          *tracing.Provider
	Meter           *metrics.Provider
	HTTPMetrics     *metrics.HTTPMetrics
	DispatchMetrics *metrics.DispatchMetrics
}

// Init installs the slog default logger and the global OpenTelemetry
// providers and propagator.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}

	slog.SetDefault(slog.New(logging.NewHandler(out, logging.HandlerConfig{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		GCPProjectID:  cfg.GCPProjectID,
		DefaultModule: cfg.DefaultModule,
	})))

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx))
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	httpMetrics, err := metrics.NewHTTPMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	dispatchMetrics, err := metrics.NewDispatchMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	return &Resources{
		Tracer:          tp,
		Meter:           mp,
		HTTPMetrics:     httpMetrics,
		DispatchMetrics: dispatchMetrics,
	}, nil
}

// Shutdown flushes pending spans and metrics.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(r.Meter.Shutdown(ctx), r.Tracer.Shutdown(ctx))
}
