// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package config

import (
	"fmt"
	"strings"
)

// validLogLevels are the accepted LOG_LEVEL values.
var validLogLevels = map[string]bool{
	"trace":    true,
	"debug":    true,
	"info":     true,
	"warn":     true,
	"warning":  true,
	"error":    true,
	"fatal":    true,
	"disabled": true,
}

// Validate checks that required configuration is present and valid.
// Error messages name the environment variable that fixes the problem.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateScripts(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration.
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT must be positive, got %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT must be positive, got %v", c.Server.WriteTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.PageRateLimit < 1 {
			return fmt.Errorf("PAGE_RATE_LIMIT must be at least 1, got %d", c.Server.PageRateLimit)
		}
		if c.Server.APIRateLimit < 1 {
			return fmt.Errorf("API_RATE_LIMIT must be at least 1, got %d", c.Server.APIRateLimit)
		}
	}
	return nil
}

// validateData validates data directory configuration. The directories are
// not required to exist: a missing data file degrades to an empty dataset
// when the page loads, never to a startup failure.
func (c *Config) validateData() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.Data.StatsDir == "" {
		return fmt.Errorf("STATS_DIR must not be empty")
	}
	if c.Data.PublicDir == "" {
		return fmt.Errorf("PUBLIC_DIR must not be empty")
	}
	if c.Data.TracksDir == "" {
		return fmt.Errorf("TRACKS_DIR must not be empty")
	}
	return nil
}

// validateScripts validates the external process configuration.
func (c *Config) validateScripts() error {
	if c.Scripts.PythonBin == "" {
		return fmt.Errorf("PYTHON_BIN must not be empty")
	}
	if c.Scripts.RaceTimingScript == "" {
		return fmt.Errorf("RACE_TIMING_SCRIPT must not be empty")
	}
	if c.Scripts.LocationsScript == "" {
		return fmt.Errorf("LOCATIONS_SCRIPT must not be empty")
	}
	if c.Scripts.Timeout <= 0 {
		return fmt.Errorf("SCRIPT_TIMEOUT must be positive, got %v", c.Scripts.Timeout)
	}
	if c.Scripts.SpawnRate <= 0 {
		return fmt.Errorf("SCRIPT_SPAWN_RATE must be positive, got %v", c.Scripts.SpawnRate)
	}
	if c.Scripts.SpawnBurst < 1 {
		return fmt.Errorf("SCRIPT_SPAWN_BURST must be at least 1, got %d", c.Scripts.SpawnBurst)
	}
	if c.Scripts.BreakerMaxFails < 1 {
		return fmt.Errorf("BREAKER_MAX_FAILURES must be at least 1, got %d", c.Scripts.BreakerMaxFails)
	}
	if c.Scripts.BreakerTimeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive, got %v", c.Scripts.BreakerTimeout)
	}
	return nil
}

// validateLogging validates logging configuration.
func (c *Config) validateLogging() error {
	level := strings.ToLower(c.Logging.Level)
	if !validLogLevels[level] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, disabled; got %q", c.Logging.Level)
	}

	format := strings.ToLower(c.Logging.Format)
	if format != "json" && format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
