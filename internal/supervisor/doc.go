// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package supervisor provides process supervision for Pitlane using suture v4.

This package implements a supervisor tree that manages the lifecycle of the
application's long-running services. It provides Erlang/OTP-style supervision
with automatic restart, failure isolation, and graceful shutdown.

# Overview

The tree is deliberately shallow because Pitlane has exactly one long-running
service, the HTTP server:

	RootSupervisor ("pitlane")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Everything else the application does is per-request work: data files are read
from disk when a page renders, and replay scripts are spawned when a replay
endpoint is hit. Per-request work needs no supervision; the request either
completes or returns an error to the client. The api-layer child supervisor
keeps its own failure counter, so a crashing HTTP server backs off without
tripping the root.

# Key Features

Automatic Restart:
  - Crashed services are automatically restarted
  - Exponential backoff prevents restart storms
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation triggers orderly shutdown
  - Configurable shutdown timeout per service
  - UnstoppedServiceReport for debugging hangs

Structured Logging:
  - Integration with slog for structured events
  - Logs service starts, stops, failures, and restarts
  - Event hooks via sutureslog adapter

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/tomtom215/pitlane/internal/logging"
	    "github.com/tomtom215/pitlane/internal/supervisor"
	    "github.com/tomtom215/pitlane/internal/supervisor/services"
	)

	func run() error {
	    tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	    if err != nil {
	        return err
	    }
	    tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	    ctx, cancel := context.WithCancel(context.Background())
	    defer cancel()
	    errCh := tree.ServeBackground(ctx)

	    // ... wait for a shutdown signal ...

	    cancel()
	    if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
	        return err
	    }
	    return nil
	}

# Configuration

The TreeConfig controls restart behavior:

	config := supervisor.TreeConfig{
	    FailureThreshold: 5.0,              // Failures before backoff
	    FailureDecay:     30.0,             // Seconds for failures to decay
	    FailureBackoff:   15 * time.Second, // Backoff duration
	    ShutdownTimeout:  10 * time.Second, // Per-service shutdown timeout
	}

Default values match suture's production-ready defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Interface

All services must implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return behavior:
  - Return nil: Service stopped cleanly, will not be restarted
  - Return error: Service crashed, will be restarted
  - Context canceled: Shutdown requested, return promptly

# What Is NOT Supervised

The data store and replay bridge are intentionally not supervised:
  - The store reads files per request; there is no resident state to restart
  - Replay scripts are short-lived subprocesses guarded by a circuit breaker
    and rate limiter inside the openf1 package

# Debugging Shutdown Issues

If services don't stop within the timeout:

	report, err := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    log.Printf("Service didn't stop: %v", svc)
	}

Common causes:
  - Goroutines not respecting context cancellation
  - Blocked network I/O without deadlines

# See Also

  - internal/supervisor/services: Service wrappers
  - github.com/thejerf/suture/v4: Underlying library
*/
package supervisor
