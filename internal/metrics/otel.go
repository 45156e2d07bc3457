package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "football-data-client"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx            context.Context
	calls          metric.Int64Counter
	errors         metric.Int64Counter
	latencyMs      metric.Float64Histogram
	rateLimitHits  metric.Int64Counter
	retryAfterMs   metric.Float64Histogram
	throttleWaitMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)

	calls, err := meter.Int64Counter("upstream_calls_total")
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter("upstream_errors_total")
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram("upstream_duration_ms")
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("upstream_rate_limit_hits_total")
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("upstream_retry_after_ms")
	if err != nil {
		return nil, err
	}
	throttleWait, err := meter.Float64Histogram("throttle_wait_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:            context.Background(),
		calls:          calls,
		errors:         errs,
		latencyMs:      latency,
		rateLimitHits:  rateLimitHits,
		retryAfterMs:   retryAfter,
		throttleWaitMs: throttleWait,
	}, nil
}

func (o *otelInstruments) recordUpstreamCall(resource string, status int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrResource, resource),
		attribute.Int(AttrStatus, status),
	}
	o.calls.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.latencyMs.Record(o.ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		o.errors.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	}
}

func (o *otelInstruments) recordRateLimit(resource string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrResource, resource))
	o.rateLimitHits.Add(o.ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfterMs.Record(o.ctx, float64(retryAfter.Milliseconds()), attrs)
	}
}

func (o *otelInstruments) recordThrottleWait(waited time.Duration) {
	if o == nil {
		return
	}
	o.throttleWaitMs.Record(o.ctx, float64(waited.Milliseconds()))
}
