// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/pitlane/internal/api"
	"github.com/tomtom215/pitlane/internal/config"
	"github.com/tomtom215/pitlane/internal/data"
	"github.com/tomtom215/pitlane/internal/logging"
	"github.com/tomtom215/pitlane/internal/metrics"
	"github.com/tomtom215/pitlane/internal/openf1"
	"github.com/tomtom215/pitlane/internal/render"
	"github.com/tomtom215/pitlane/internal/supervisor"
	"github.com/tomtom215/pitlane/internal/supervisor/services"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Pitlane with supervisor tree")
	logging.Info().
		Str("data_dir", cfg.Data.Dir).
		Str("stats_dir", cfg.Data.StatsDir).
		Str("public_dir", cfg.Data.PublicDir).
		Str("python_bin", cfg.Scripts.PythonBin).
		Msg("Configuration loaded")

	metrics.SetAppInfo(version)

	if cfg.Server.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("Every locations API request spawns an external process - do not expose this publicly!")
	}

	// The data store reads the pre-generated JSON files per request; there
	// is nothing to open or close here. Missing directories surface as empty
	// pages rather than startup failures, but they are worth a warning.
	store := data.NewStore(cfg.Data)
	if _, err := os.Stat(cfg.Data.Dir); err != nil {
		logging.Warn().Err(err).Str("data_dir", cfg.Data.Dir).Msg("Data directory not readable - pages will render empty")
	}

	// Parse the embedded page templates once. A parse failure is a build
	// defect, not a runtime condition.
	engine, err := render.New()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse templates")
	}
	logging.Info().Msg("Template engine initialized")

	// The replay bridge spawns the Python scripts behind a shared circuit
	// breaker and spawn rate limiter.
	replay := openf1.NewClient(cfg.Scripts)
	logging.Info().
		Str("race_timing_script", cfg.Scripts.RaceTimingScript).
		Str("locations_script", cfg.Scripts.LocationsScript).
		Dur("timeout", cfg.Scripts.Timeout).
		Msg("Replay bridge initialized")

	handler := api.NewHandler(store, engine, replay, cfg, version)
	middleware := api.NewMiddleware(cfg.Server)
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter.
	// This bridges zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
