// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package main is the entry point for the Pitlane server application.

Pitlane is a self-hosted Formula 1 dashboard that serves the season schedule,
driver and team profiles, a glossary of F1 terms, and interactive race
replays. Page content comes from pre-generated JSON data files on disk;
replay timing and car location data are fetched on demand by spawning
external Python scripts.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("pitlane")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (pages, locations API, health, metrics)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Data Store: per-request reader for the pre-generated JSON data files
 4. Template Engine: embedded html/template pages parsed once at startup
 5. Replay Bridge: circuit-broken, rate-limited subprocess client
 6. HTTP Server: Chi router with middleware stack
 7. Supervisor Tree: Suture v4 process supervision

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	PORT=3000                    # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Data files
	DATA_DIR=./public/data       # schedule.json, drivers.json, teams.json, ...
	STATS_DIR=./public/data/stats
	PUBLIC_DIR=./public          # static assets served at /images, /css, /js
	TRACKS_DIR=./public/images/tracks

	# Replay scripts
	PYTHON_BIN=python3
	RACE_TIMING_SCRIPT=./scripts/get_replay_data.py
	LOCATIONS_SCRIPT=./scripts/get_location_data.py
	SCRIPT_TIMEOUT=60s

See internal/config for the complete reference.

# Data Files

The server never talks to the upstream F1 APIs for page content. A separate
offline pipeline writes the JSON data files; the server re-reads them on
every request, so refreshed files show up without a restart. A missing or
malformed file renders as an empty page section, never an error.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (HTTP_SHUTDOWN_TIMEOUT, default 10s)
 3. Reports any services that failed to stop

# Usage Examples

Development:

	export LOG_FORMAT=console
	go run ./cmd/server

Production:

	export PORT=3000
	export DATA_DIR=/srv/pitlane/public/data
	export PUBLIC_DIR=/srv/pitlane/public
	./pitlane

Docker:

	docker run -d \
	  -v /srv/pitlane/public:/app/public \
	  -v /srv/pitlane/scripts:/app/scripts \
	  -p 3000:3000 \
	  ghcr.io/tomtom215/pitlane

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/data: Data file loading
  - internal/openf1: Replay script bridge
*/
package main
