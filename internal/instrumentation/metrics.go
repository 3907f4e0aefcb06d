package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrMethod = "method"
	attrPath   = "path"
	attrStatus = "status"
	attrResult = "result"
)

// Metrics provides methods for recording observability metrics. The zero
// value is a no-op recorder, so a nil or unconfigured Metrics can be
// carried through the client without guards at every call site.
type Metrics struct {
	apiRequestsTotal   metric.Int64Counter
	apiRequestDuration metric.Float64Histogram

	// detailedLabels controls whether the request path is attached to
	// metrics. Paths embed owner/repo names, so this is off by default.
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	m.apiRequestsTotal, err = meter.Int64Counter(
		"github_api_requests_total",
		metric.WithDescription("Total number of GitHub API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create github_api_requests_total counter: %w", err)
	}

	m.apiRequestDuration, err = meter.Float64Histogram(
		"github_api_request_duration_seconds",
		metric.WithDescription("GitHub API request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create github_api_request_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordAPIRequest records a single API request with method, path, status
// code, and duration. A status code of 0 indicates a transport failure
// before any response was received.
func (m *Metrics) RecordAPIRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m == nil || m.apiRequestsTotal == nil || m.apiRequestDuration == nil {
		return // Instrumentation not initialized
	}

	result := StatusError
	if statusCode >= 200 && statusCode <= 299 {
		result = StatusSuccess
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
		attribute.String(attrResult, result),
	}

	// Only add high-cardinality labels if explicitly enabled
	if m.detailedLabels && path != "" {
		attrs = append(attrs, attribute.String(attrPath, path))
	}

	m.apiRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.apiRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
