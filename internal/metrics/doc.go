// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus
client library, exposing metrics for monitoring performance, errors, and
system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Data file loading (the pre-generated JSON files the server reads)
  - External replay-data script invocations
  - Circuit breaker state around process spawns

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP Metrics:
  - http_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - http_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - http_active_requests: Active requests (gauge)
  - http_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Data File Metrics:
  - data_file_loads_total: Load attempts (counter)
    Labels: file, result (ok, missing, malformed)
  - data_file_load_duration_seconds: Load latency (histogram)
    Labels: file
  - data_file_entities: Records parsed on last load (gauge)
    Labels: file

External Process Metrics:
  - script_invocations_total: Script invocations (counter)
    Labels: script, result (success, failure, rejected)
  - script_duration_seconds: Invocation duration (histogram)
    Labels: script
  - script_output_bytes: Stdout size (histogram)
    Labels: script

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

# Usage Example

Recording metrics from a handler or client:

	import "github.com/tomtom215/pitlane/internal/metrics"

	start := time.Now()
	out, err := runScript(ctx, args...)
	metrics.RecordScriptInvocation("race_timing", time.Since(start), len(out), err)

Example PromQL queries:

	# HTTP request rate
	rate(http_requests_total[5m])

	# HTTP p95 latency
	histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))

	# Script failure ratio
	sum(rate(script_invocations_total{result="failure"}[5m]))
	/
	sum(rate(script_invocations_total[5m]))

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent
use from multiple goroutines. The Prometheus client library handles
synchronization internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use chi route patterns, not raw URLs (so
    /drivers/max-verstappen records as /drivers/{driverId})
  - Script labels are fixed names ("race_timing", "locations")
  - Data file labels are the fixed set of known file names

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/openf1: Script invocation metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
