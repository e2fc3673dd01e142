// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - HTTP endpoint latency and throughput
// - Data file loading (the pre-generated JSON files)
// - External replay-data process invocations
// - Circuit breaker state around process spawns

var (
	// HTTP Endpoint Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for page latency
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	HTTPRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Data File Metrics
	DataFileLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_file_loads_total",
			Help: "Total number of data file load attempts",
		},
		[]string{"file", "result"}, // result: "ok", "missing", "malformed"
	)

	DataFileLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "data_file_load_duration_seconds",
			Help:    "Duration of data file loads in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}, // Local file reads
		},
		[]string{"file"},
	)

	DataFileEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "data_file_entities",
			Help: "Number of records parsed from each data file on its last load",
		},
		[]string{"file"},
	)

	// External Process Metrics
	ScriptInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "script_invocations_total",
			Help: "Total number of external script invocations",
		},
		[]string{"script", "result"}, // result: "success", "failure", "rejected"
	)

	ScriptDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "script_duration_seconds",
			Help:    "Duration of external script invocations in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120}, // Upstream fetches can take a while
		},
		[]string{"script"},
	)

	ScriptOutputBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "script_output_bytes",
			Help:    "Size of external script stdout in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB .. 16MiB
		},
		[]string{"script"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordHTTPRequest records an HTTP request metric
func RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active HTTP requests
func TrackActiveRequest(inc bool) {
	if inc {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rate limit rejection
func RecordRateLimitHit(endpoint string) {
	HTTPRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordDataFileLoad records a data file load attempt and its outcome.
// The result is "ok", "missing" or "malformed"; entities is the number of
// records parsed (zero for missing or malformed files).
func RecordDataFileLoad(file, result string, duration time.Duration, entities int) {
	DataFileLoads.WithLabelValues(file, result).Inc()
	DataFileLoadDuration.WithLabelValues(file).Observe(duration.Seconds())
	DataFileEntities.WithLabelValues(file).Set(float64(entities))
}

// RecordScriptInvocation records an external script invocation metric
func RecordScriptInvocation(script string, duration time.Duration, outputBytes int, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ScriptInvocations.WithLabelValues(script, result).Inc()
	ScriptDuration.WithLabelValues(script).Observe(duration.Seconds())
	if err == nil {
		ScriptOutputBytes.WithLabelValues(script).Observe(float64(outputBytes))
	}
}

// RecordScriptRejected records an invocation refused before spawning
// (open circuit breaker or spawn rate limit).
func RecordScriptRejected(script string) {
	ScriptInvocations.WithLabelValues(script, "rejected").Inc()
}

// RecordBreakerTransition records a circuit breaker state transition
func RecordBreakerTransition(name, fromState, toState string) {
	CircuitBreakerTransitions.WithLabelValues(name, fromState, toState).Inc()
}

// UpdateBreakerState updates the circuit breaker state gauge
// (0=closed, 1=half-open, 2=open)
func UpdateBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordBreakerRequest records the outcome of a request through the breaker
func RecordBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// SetAppInfo sets the application version info metric
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime updates the application uptime gauge
func UpdateUptime(startTime time.Time) {
	AppUptime.Set(time.Since(startTime).Seconds())
}
