// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package api provides HTTP routing using the Chi router.
package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/pitlane/internal/middleware"
)

// Router wires the handlers and middleware into the HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *Middleware
}

// NewRouter creates a router for the given handler and middleware factory.
func NewRouter(handler *Handler, mw *Middleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so the middleware package works with
// Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())      // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// ========================
	// Dashboard Pages
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitPages())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(chiPathValue) // Bridge Chi URL params to r.PathValue()

		r.Get("/", router.handler.Root)
		r.Get("/schedule", router.handler.Schedule)
		r.Get("/drivers", router.handler.Drivers)
		r.Get("/drivers/{driverId}", router.handler.DriverDetail)
		r.Get("/teams", router.handler.Teams)
		r.Get("/teams/{teamId}", router.handler.TeamDetail)
		r.Get("/glossary", router.handler.Glossary)
		r.Get("/replays/{session_key}", router.handler.Replay)
	})

	// ========================
	// Locations API
	// ========================
	// Stricter rate limiting: every request can spawn a subprocess
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAPI())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiPathValue) // Bridge Chi URL params to r.PathValue()

		r.Get("/locations/{session_key}/{startTime}/{endTime}", router.handler.Locations)
	})

	// ========================
	// Health & Observability
	// ========================
	r.Get("/healthz", router.handler.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Static Assets
	// ========================
	// Served straight from the public dir; URL paths mirror the layout
	r.Group(func(r chi.Router) {
		r.Use(StaticCacheHeaders())

		fs := http.FileServer(http.Dir(router.handler.config.Data.PublicDir))
		r.Handle("/images/*", fs)
		r.Handle("/css/*", fs)
		r.Handle("/js/*", fs)
	})

	// ========================
	// Fallback
	// ========================
	// Must be last - catches all unmatched routes
	r.NotFound(router.handler.NotFound)

	return r
}

// chiPathValue middleware injects Chi URL params into the request so
// handlers use r.PathValue(). Values are path-unescaped first: Chi routes
// on the raw path when the client percent-encodes, and the timestamp
// params legitimately carry ':' and '+' in both encoded and raw forms.
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					value := rctx.URLParams.Values[i]
					if decoded, err := url.PathUnescape(value); err == nil {
						value = decoded
					}
					r.SetPathValue(key, value)
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
