// Package instrumentation provides OpenTelemetry metrics and tracing for
// the gohub module.
//
// The package wires three concerns together:
//
//   - Config: environment-driven configuration for exporters and
//     sampling (OTEL_SERVICE_NAME, METRICS_EXPORTER, TRACING_EXPORTER,
//     OTEL_EXPORTER_OTLP_ENDPOINT, ...)
//   - Provider: constructs meter and tracer providers with the configured
//     exporters (prometheus, otlp, stdout) and installs them as the otel
//     globals
//   - Metrics: a nil-safe recorder for per-request counters and duration
//     histograms, attached to the API client
//
// Request paths embed owner and repository names, so they are only added
// as metric labels when DetailedLabels is explicitly enabled.
//
// # Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer provider.Shutdown(ctx)
//
//	client := github.NewClient("my-app", token).WithMetrics(provider.Metrics())
package instrumentation
