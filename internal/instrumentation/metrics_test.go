package instrumentation

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMetrics_RecordAPIRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordAPIRequest(ctx, "GET", "/user/repos", 200, 100*time.Millisecond)
	metrics.RecordAPIRequest(ctx, "POST", "/gists", 201, 50*time.Millisecond)
	metrics.RecordAPIRequest(ctx, "GET", "/repos/octocat/hello/issues", 404, 20*time.Millisecond)
	metrics.RecordAPIRequest(ctx, "GET", "/user/repos", 0, 5*time.Millisecond)
}

func TestMetrics_ResultLabel(t *testing.T) {
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = meterProvider.Shutdown(ctx) }()

	metrics, err := NewMetrics(meterProvider.Meter("test"), false)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.RecordAPIRequest(ctx, "GET", "/user/repos", 200, time.Millisecond)
	metrics.RecordAPIRequest(ctx, "GET", "/user/repos", 404, time.Millisecond)
	metrics.RecordAPIRequest(ctx, "GET", "/user/repos", 0, time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	// statusCode -> expected result label
	want := map[string]string{"200": StatusSuccess, "404": StatusError, "0": StatusError}
	found := 0
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "github_api_requests_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("github_api_requests_total data type = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				status, _ := dp.Attributes.Value(attribute.Key("status"))
				result, _ := dp.Attributes.Value(attribute.Key("result"))
				wantResult, known := want[status.AsString()]
				if !known {
					t.Errorf("unexpected status label %q", status.AsString())
					continue
				}
				if result.AsString() != wantResult {
					t.Errorf("status %s: result = %q, want %q", status.AsString(), result.AsString(), wantResult)
				}
				found++
			}
		}
	}
	if found != 3 {
		t.Errorf("found %d data points, want 3", found)
	}
}

func TestMetrics_ZeroValueIsNoOp(t *testing.T) {
	ctx := context.Background()

	var metrics Metrics
	// Uninitialized recorder must swallow records without panicking
	metrics.RecordAPIRequest(ctx, "GET", "/user/repos", 200, time.Millisecond)

	var nilMetrics *Metrics
	nilMetrics.RecordAPIRequest(ctx, "GET", "/user/repos", 200, time.Millisecond)
}

func TestMetrics_DisabledProvider(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create disabled provider: %v", err)
	}

	if provider.Enabled() {
		t.Error("expected provider to be disabled")
	}

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("disabled provider should still hand out a no-op recorder")
	}

	// Should not panic
	metrics.RecordAPIRequest(ctx, "DELETE", "/repos/octocat/hello/hooks/1", 204, time.Millisecond)
}
