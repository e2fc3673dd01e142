// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Server: HTTP server settings (host, port, timeouts, rate limits)
//  2. Data: Locations of the pre-generated JSON data files and static assets
//  3. Scripts: The external replay-data process (interpreter, script paths,
//     execution timeout, spawn limits)
//  4. Logging: Log levels and output formats
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Server.Port, cfg.Data.Dir, etc. are now populated
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from
// multiple goroutines.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Data    DataConfig    `koanf:"data"`
	Scripts ScriptsConfig `koanf:"scripts"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - PORT: Listen port (default: 3000)
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_READ_TIMEOUT: Request read timeout (default: 15s)
//   - HTTP_WRITE_TIMEOUT: Response write timeout (default: 30s)
//   - HTTP_IDLE_TIMEOUT: Keep-alive idle timeout (default: 120s)
//   - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown drain window (default: 10s)
//   - CORS_ORIGINS: Comma-separated list of allowed origins (default: *)
//   - PAGE_RATE_LIMIT: Page requests per minute per IP (default: 120)
//   - API_RATE_LIMIT: API requests per minute per IP (default: 30)
//   - DISABLE_RATE_LIMIT: Disable rate limiting entirely (default: false)
//
// The API rate limit is deliberately tighter than the page limit: every
// locations API request spawns an external process.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	PageRateLimit     int           `koanf:"page_rate_limit"`
	APIRateLimit      int           `koanf:"api_rate_limit"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// DataConfig holds the locations of the pre-generated JSON data files and
// the static asset tree. The data files are produced offline by the build
// scripts; the server only ever reads them.
//
// Environment Variables:
//   - DATA_DIR: Directory with schedule.json, drivers.json, teams.json,
//     glossary.json and driver_descriptions.json (default: ./public/data)
//   - STATS_DIR: Directory with per-driver stats files named <slug>.json
//     (default: ./public/data/stats)
//   - PUBLIC_DIR: Static asset root served at /images, /css and /js
//     (default: ./public)
//   - TRACKS_DIR: Directory probed for track layout images
//     (default: ./public/images/tracks)
type DataConfig struct {
	Dir       string `koanf:"dir"`
	StatsDir  string `koanf:"stats_dir"`
	PublicDir string `koanf:"public_dir"`
	TracksDir string `koanf:"tracks_dir"`
}

// ScriptsConfig holds settings for the external replay-data process. Race
// timing and location data are fetched by shelling out to Python scripts
// rather than talking to the upstream API in-process.
//
// Environment Variables:
//   - PYTHON_BIN: Python interpreter to invoke (default: python3)
//   - RACE_TIMING_SCRIPT: Script producing race timing JSON
//     (default: ./scripts/get_replay_data.py)
//   - LOCATIONS_SCRIPT: Script producing location chunk JSON
//     (default: ./scripts/get_location_data.py)
//   - SCRIPT_TIMEOUT: Per-invocation execution timeout (default: 60s)
//   - SCRIPT_SPAWN_RATE: Max spawns per second across all requests (default: 5)
//   - SCRIPT_SPAWN_BURST: Spawn burst allowance (default: 5)
//   - BREAKER_MAX_FAILURES: Consecutive failures before the circuit opens
//     (default: 5)
//   - BREAKER_TIMEOUT: How long the circuit stays open before probing again
//     (default: 30s)
type ScriptsConfig struct {
	PythonBin        string        `koanf:"python_bin"`
	RaceTimingScript string        `koanf:"race_timing_script"`
	LocationsScript  string        `koanf:"locations_script"`
	Timeout          time.Duration `koanf:"timeout"`
	SpawnRate        float64       `koanf:"spawn_rate"`
	SpawnBurst       int           `koanf:"spawn_burst"`
	BreakerMaxFails  uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error, fatal, disabled (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line in log output (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port string the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
