// Package metrics holds the instruments shared by ytsum services and the
// wiring that exports them to Prometheus.
//
// Services create instruments from the global otel meter. Until a meter
// provider is installed with Install those instruments are no-ops, so
// libraries and CLI commands pay nothing for metrics they never export.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "ytsum"

// Attribute values for the result dimension.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultCache = "cache"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

// Meter returns the ytsum meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(meterName)
}

// Counter returns an int64 counter named name. Instrument creation errors
// yield a no-op counter.
func Counter(name, description string) metric.Int64Counter {
	c, err := Meter().Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)

		return noop.Int64Counter{}
	}

	return c
}

// Histogram returns a float64 histogram in seconds using DefaultBuckets.
func Histogram(name, description string) metric.Float64Histogram {
	h, err := Meter().Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		otel.Handle(err)

		return noop.Float64Histogram{}
	}

	return h
}

// Install creates an SDK meter provider exporting through reg and installs
// it as the global provider.
func Install(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}
