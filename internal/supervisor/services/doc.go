// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package services provides suture.Service wrappers for Pitlane components.

This package adapts application components to the suture v4 supervision model,
translating their lifecycle patterns into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation (ListenAndServe to Serve pattern)
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Pitlane serves pages and replay data on demand, so the HTTP server is the
only component with a resident lifecycle. Data file reads and replay script
subprocesses live inside request handlers and end with the request.

# Usage Example

	import (
	    "net/http"
	    "time"

	    "github.com/tomtom215/pitlane/internal/supervisor"
	    "github.com/tomtom215/pitlane/internal/supervisor/services"
	)

	func setupSupervisor(server *http.Server) error {
	    tree, err := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	    if err != nil {
	        return err
	    }

	    // HTTP server with 10s shutdown timeout
	    httpSvc := services.NewHTTPServerService(server, 10*time.Second)
	    tree.AddAPIService(httpSvc)

	    return tree.Serve(ctx)
	}

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

# Service Identification

All services implement fmt.Stringer for logging:

	func (s *HTTPServerService) String() string {
	    return "http-server"
	}

Suture uses this for log messages:

	INFO http-server: starting
	INFO http-server: stopped
	ERROR http-server: restarting after failure

# Testing

Services can be tested with mock components that implement the HTTPServer
interface; see http_service_test.go for the pattern.

# See Also

  - internal/supervisor: Tree that manages these services
  - github.com/thejerf/suture/v4: Underlying supervision library
*/
package services
