// SPDX-License-Identifier: MIT
// File: telemetry.go
// Role: OpenTelemetry tracer and meter handles for facade calls.

package analysis

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "sna.analysis"

var meter = otel.Meter(instrumentationName)

var (
	metricsOnce sync.Once
	metricsErr  error

	callDuration  metric.Float64Histogram
	callTotal     metric.Int64Counter
	callFailures  metric.Int64Counter
	memoHits      metric.Int64Counter
	graphVertices metric.Int64Histogram
)

// initMetrics creates the instruments once; a failure leaves them nil and
// recording is skipped.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		callDuration, err = meter.Float64Histogram(
			"sna_analysis_duration_seconds",
			metric.WithDescription("Duration of analysis calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		callTotal, err = meter.Int64Counter(
			"sna_analysis_calls_total",
			metric.WithDescription("Total analysis calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		callFailures, err = meter.Int64Counter(
			"sna_analysis_failures_total",
			metric.WithDescription("Failed analysis calls by kind"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		memoHits, err = meter.Int64Counter(
			"sna_analysis_distance_memo_hits_total",
			metric.WithDescription("Distance results served from the session memo"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		graphVertices, err = meter.Int64Histogram(
			"sna_analysis_graph_vertices",
			metric.WithDescription("Vertex count of analyzed graphs"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}
