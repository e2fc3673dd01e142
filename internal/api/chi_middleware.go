// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package api provides Chi middleware factories built on the
// production-hardened Chi ecosystem middleware.
package api

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/pitlane/internal/config"
	"github.com/tomtom215/pitlane/internal/logging"
	"github.com/tomtom215/pitlane/internal/metrics"
)

// Middleware provides Chi-compatible middleware factories configured from
// the server section.
type Middleware struct {
	cfg  config.ServerConfig
	cors func(http.Handler) http.Handler
}

// NewMiddleware creates a middleware factory. The dashboard is a
// read-only surface, so CORS allows GET and preflight only.
func NewMiddleware(cfg config.ServerConfig) *Middleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	})

	return &Middleware{
		cfg:  cfg,
		cors: corsHandler,
	}
}

// CORS returns the global CORS middleware using go-chi/cors. It must be
// global to handle OPTIONS preflight before routing.
func (m *Middleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimitPages returns the per-IP rate limiter for HTML pages.
func (m *Middleware) RateLimitPages() func(http.Handler) http.Handler {
	return m.rateLimit(m.cfg.PageRateLimit, "pages", pageRateLimited)
}

// RateLimitAPI returns the stricter per-IP rate limiter for the locations
// API. Every request there can spawn a subprocess, so the window is
// deliberately tight.
func (m *Middleware) RateLimitAPI() func(http.Handler) http.Handler {
	return m.rateLimit(m.cfg.APIRateLimit, "api", apiRateLimited)
}

func (m *Middleware) rateLimit(requests int, group string, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	if m.cfg.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(group)
			logging.Warn().
				Str("group", group).
				Str("path", r.URL.Path).
				Str("remote_addr", r.RemoteAddr).
				Msg("Rate limit exceeded")
			onLimit(w, r)
		}),
	)
}

// pageRateLimited answers page traffic over the limit with plain text.
func pageRateLimited(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
}

// apiRateLimited answers API traffic over the limit with the standard
// error envelope.
func apiRateLimited(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests,
		"Too many requests. Please slow down.", nil)
}

// RequestIDWithLogging returns a middleware that adds an X-Request-ID
// header and puts the ID into the logging context for request tracing.
// It wraps chi's RequestID middleware so both agree on the ID.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set("X-Request-ID", requestID)
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APISecurityHeaders returns a middleware that adds security headers to
// API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff (prevents MIME type sniffing)
//   - X-Frame-Options: DENY (prevents clickjacking)
//   - Referrer-Policy: strict-origin-when-cross-origin
//
// HSTS is added conditionally when the request arrives over HTTPS or from
// a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// StaticCacheHeaders returns a middleware that marks static assets as
// cacheable. The data files themselves are never served through this
// path, only images, stylesheets and scripts.
func StaticCacheHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
		})
	}
}
