// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package api provides the HTTP layer for Pitlane.

This package implements the dashboard pages, the locations API, and the
operational endpoints. It sits between the browser and the backend
packages: the data store, the page template engine, and the OpenF1
subprocess bridge.

Key Components:

  - Router: HTTP route configuration and middleware stack integration
  - Handler: Request handlers for all pages and API endpoints
  - View models: Typed payloads handed to the template engine
  - Response formatting: Standardized JSON envelopes for API errors
  - Rate limiting: Per-IP limits with a stricter tier for the API
  - CORS: Cross-Origin Resource Sharing for embedding the API

Route Categories:

1. Dashboard Pages:
  - / (redirects to /schedule)
  - /schedule, /drivers, /drivers/{driverId}
  - /teams, /teams/{teamId}, /glossary
  - /replays/{session_key}

2. Locations API (/api/):
  - /api/locations/{session_key}/{startTime}/{endTime}
  - Proxies car telemetry from the OpenF1 bridge as raw JSON

3. Operational Endpoints:
  - /healthz for liveness probes
  - /metrics for Prometheus scraping

4. Static Assets:
  - /css/*, /js/*, /images/* served from the public directory

Error Semantics:

Pages degrade rather than fail: missing data files render as empty
sections, unknown entities render the not-found page with status 404,
and bridge failures render the page shell with an error banner. Only
the JSON API returns structured error envelopes.

Usage Example:

	import (
	    "github.com/tomtom215/pitlane/internal/api"
	    "github.com/tomtom215/pitlane/internal/data"
	    "github.com/tomtom215/pitlane/internal/openf1"
	    "github.com/tomtom215/pitlane/internal/render"
	)

	// Create dependencies
	store := data.NewStore(cfg.Data)
	engine, _ := render.New()
	client := openf1.NewClient(cfg.Scripts)

	// Create handler and router
	handler := api.NewHandler(store, engine, client, cfg, "1.0.0")
	router := api.NewRouter(handler, api.NewMiddleware(cfg.Server))

	// Setup routes and start server
	http.ListenAndServe(":3000", router.SetupChi())

Thread Safety:

All handlers are thread-safe and designed for concurrent request
handling. The data store re-reads files per request and the OpenF1
client serializes its own spawn accounting.

See Also:

  - internal/data: Data file loading and lookups
  - internal/render: HTML page rendering
  - internal/openf1: Python subprocess bridge
  - internal/middleware: HTTP middleware components
*/
package api
