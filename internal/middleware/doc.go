// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for gzip compression and
Prometheus metrics integration. Both are written as http.HandlerFunc
decorators and are mounted on the chi router through the api package's
chiMiddleware adapter.

Key Components:

  - Compression: Gzip compression for clients that accept it
  - PrometheusMetrics: HTTP request/response instrumentation (request
    counts, latency histograms, active request gauge) labelled by chi
    route pattern to keep cardinality bounded

Middleware Stack:

The chi router applies these per route group:

	r.Route("/drivers", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.Compression))
	    ...
	})

Thread Safety:

All middleware is safe for concurrent use. The gzip writer pool amortizes
allocations across requests; metric recording delegates to the Prometheus
client's internal synchronization.
*/
package middleware
