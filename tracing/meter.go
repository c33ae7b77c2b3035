package tracing

import (
	"context"

	tower "github.com/ae-scientist/tower"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"google.golang.org/grpc/credentials"
)

// MetricsConfigured indicates whether OTel metrics have been configured.
var MetricsConfigured bool

// MetricsConfig holds the export settings for the control plane's meters.
type MetricsConfig struct {
	OTLPAddress  string            `long:"otlp-address"  description:"OTLP gRPC endpoint for metrics export"`
	OTLPHeaders  map[string]string `long:"otlp-header"   description:"headers to attach to OTLP metrics requests"`
	OTLPUseTLS   bool              `long:"otlp-use-tls"  description:"use TLS for OTLP metrics connection"`
	GCPProjectID string            `long:"gcp-project-id" description:"GCP project ID for Cloud Monitoring export"`
}

// Resource identifies the tower control plane on every exported metric, so
// its series are distinguishable from the pipelines it supervises.
func Resource() *sdkresource.Resource {
	return sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("tower"),
		semconv.ServiceVersion(tower.Version),
	)
}

// ConfigureMeterProvider sets the global OTel MeterProvider.
func ConfigureMeterProvider(mp *sdkmetric.MeterProvider) {
	otel.SetMeterProvider(mp)
	MetricsConfigured = true
}

// MeterProvider creates an OTel MeterProvider based on the config. Returns
// (nil, nil, nil) if no metrics export is configured. The returned shutdown
// function should be called on exit.
func (c MetricsConfig) MeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	switch {
	case c.OTLPAddress != "":
		return c.otlpMeterProvider()
	case c.GCPProjectID != "":
		return c.gcpMeterProvider()
	default:
		return nil, nil, nil
	}
}

func (c MetricsConfig) otlpMeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(c.OTLPAddress),
		otlpmetricgrpc.WithHeaders(c.OTLPHeaders),
	}

	if c.OTLPUseTLS {
		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	} else {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	mp := providerFor(exporter)
	return mp, mp.Shutdown, nil
}

func (c MetricsConfig) gcpMeterProvider() (*sdkmetric.MeterProvider, func(context.Context) error, error) {
	// Cloud Monitoring accepts standard OTLP on its ingestion endpoint, so
	// no GCP-specific exporter is needed.
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint("monitoring.googleapis.com:443"),
		otlpmetricgrpc.WithHeaders(map[string]string{
			"x-goog-user-project": c.GCPProjectID,
		}),
		otlpmetricgrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")),
	}

	exporter, err := otlpmetricgrpc.New(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	mp := providerFor(exporter)
	return mp, mp.Shutdown, nil
}

func providerFor(exporter sdkmetric.Exporter) *sdkmetric.MeterProvider {
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(Resource()),
	)
}
