package metrics

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

const meterName = "github.com/KasumiMercury/primind-car-care"

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

type Provider struct {
	mp *sdkmetric.MeterProvider
}

func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.mp
}

func (p *Provider) Meter() metric.Meter {
	return p.mp.Meter(meterName)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

type HTTPMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func NewHTTPMetrics(meter metric.Meter) (*HTTPMetrics, error) {
	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests handled"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{requests: requests, duration: duration}, nil
}

// Record uses the route template, never the raw path, to keep cardinality bounded.
func (m *HTTPMetrics) Record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.String("http.response.status_code", strconv.Itoa(status)),
	)

	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// DispatchMetrics counts the outcome of due-notification sweeps.
type DispatchMetrics struct {
	runs     metric.Int64Counter
	due      metric.Int64Counter
	pushed   metric.Int64Counter
	failures metric.Int64Counter
}

func NewDispatchMetrics(meter metric.Meter) (*DispatchMetrics, error) {
	runs, err := meter.Int64Counter("reminder.dispatch.runs")
	if err != nil {
		return nil, err
	}

	due, err := meter.Int64Counter("reminder.dispatch.due")
	if err != nil {
		return nil, err
	}

	pushed, err := meter.Int64Counter("reminder.dispatch.pushed")
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("reminder.dispatch.failures")
	if err != nil {
		return nil, err
	}

	return &DispatchMetrics{runs: runs, due: due, pushed: pushed, failures: failures}, nil
}

func (m *DispatchMetrics) Record(ctx context.Context, due, pushed, failures int, err error) {
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.Bool("error", err != nil)))
	m.due.Add(ctx, int64(due))
	m.pushed.Add(ctx, int64(pushed))
	m.failures.Add(ctx, int64(failures))
}
