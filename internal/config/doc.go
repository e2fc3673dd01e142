// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

/*
Package config provides centralized configuration management for Pitlane.

This package handles loading, validation, and parsing of configuration for
all application components. It ensures consistent configuration across the
server and provides sensible defaults for every setting, so a bare
`pitlane` invocation with no environment works out of the box.

# Configuration Sources

The package reads configuration in layers, later layers overriding earlier:
  - Built-in defaults (always present)
  - Optional YAML config file (config.yaml, or CONFIG_PATH)
  - Environment variables (highest priority)

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts, rate limits)
  - DataConfig: Locations of pre-generated JSON data files and static assets
  - ScriptsConfig: External replay-data process settings
  - LoggingConfig: Log levels and output formats

# Environment Variables

HTTP Server (ServerConfig):
  - PORT: Listen port (default: 3000)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT: Request read timeout (default: 15s)
  - HTTP_WRITE_TIMEOUT: Response write timeout (default: 30s)
  - HTTP_IDLE_TIMEOUT: Keep-alive idle timeout (default: 120s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown window (default: 10s)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - PAGE_RATE_LIMIT: Page requests/minute/IP (default: 120)
  - API_RATE_LIMIT: API requests/minute/IP (default: 30)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Data Files (DataConfig):
  - DATA_DIR: JSON data file directory (default: ./public/data)
  - STATS_DIR: Per-driver stats directory (default: ./public/data/stats)
  - PUBLIC_DIR: Static asset root (default: ./public)
  - TRACKS_DIR: Track layout image directory (default: ./public/images/tracks)

External Process (ScriptsConfig):
  - PYTHON_BIN: Python interpreter (default: python3)
  - RACE_TIMING_SCRIPT: Race timing script path (default: ./scripts/get_replay_data.py)
  - LOCATIONS_SCRIPT: Location data script path (default: ./scripts/get_location_data.py)
  - SCRIPT_TIMEOUT: Per-invocation timeout (default: 60s)
  - SCRIPT_SPAWN_RATE: Max spawns per second (default: 5)
  - SCRIPT_SPAWN_BURST: Spawn burst allowance (default: 5)
  - BREAKER_MAX_FAILURES: Failures before circuit opens (default: 5)
  - BREAKER_TIMEOUT: Open-circuit probe interval (default: 30s)

Logging (LoggingConfig):
  - LOG_LEVEL: trace/debug/info/warn/error/fatal/disabled (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage Example

Basic configuration loading:

	import "github.com/tomtom215/pitlane/internal/config"

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr())
	fmt.Printf("Data dir: %s\n", cfg.Data.Dir)

# Validation

Load() validates every section and returns an error naming the environment
variable to fix:

  - Numeric ranges: PORT (1-65535), rate limits (>=1)
  - Durations: timeouts must be positive
  - Paths: data directories and script paths must be non-empty (they are
    not required to exist at startup; missing data files degrade to empty
    datasets at load time)
  - Enumerations: LOG_LEVEL and LOG_FORMAT

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent access from multiple goroutines without synchronization.
*/
package config
