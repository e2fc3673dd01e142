// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package openf1

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/pitlane/internal/config"
	"github.com/tomtom215/pitlane/internal/logging"
	"github.com/tomtom215/pitlane/internal/metrics"
)

// breakerName labels the shared circuit breaker in logs and metrics. Both
// scripts talk to the same upstream (the OpenF1 API through the same
// Python environment), so they share one breaker.
const breakerName = "openf1-scripts"

// Script labels for invocation metrics.
const (
	scriptRaceTiming = "race_timing"
	scriptLocations  = "locations"
)

// ErrSpawnLimited is returned when the spawn rate limiter rejects an
// invocation before any process is started.
var ErrSpawnLimited = errors.New("script spawn rate exceeded")

// CommandRunner executes one script process and returns its standard
// output and standard error separately. Stdout must stay clean of stderr
// noise because the locations endpoint returns it as the response body.
type CommandRunner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Client is the bridge to the external data-fetching scripts. Every call
// spawns a fresh interpreter process; there is no connection to pool and
// no retry. The breaker fails fast after repeated spawn failures and the
// rate limiter bounds how quickly processes can be created.
type Client struct {
	cfg     config.ScriptsConfig
	breaker *gobreaker.CircuitBreaker[[]byte]
	limiter *rate.Limiter
	run     CommandRunner
}

// NewClient creates a Client for the configured interpreter and scripts.
func NewClient(cfg config.ScriptsConfig) *Client {
	metrics.UpdateBreakerState(breakerName, 0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1, // single probe while half-open
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFails
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Warn().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] Script bridge state transition")

			metrics.UpdateBreakerState(name, stateToFloat(to))
			metrics.RecordBreakerTransition(name, fromStr, toStr)
		},
	})

	return &Client{
		cfg:     cfg,
		breaker: cb,
		limiter: rate.NewLimiter(rate.Limit(cfg.SpawnRate), cfg.SpawnBurst),
		run:     execScript,
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (c *Client) WithCommandRunner(run CommandRunner) {
	c.run = run
}

// IsUnavailable reports whether err is the bridge protecting itself (open
// breaker or spawn rate limit) rather than a script failure. Handlers map
// these to 503 instead of 500.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrSpawnLimited) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests)
}

// invoke runs one script through the limiter and breaker and returns its
// stdout. Exit 0 resolves with stdout; a non-zero exit rejects with the
// trimmed stderr text when present, else the exit error. Stderr alongside
// exit 0 is logged and ignored.
func (c *Client) invoke(ctx context.Context, script, label string, args []string) ([]byte, error) {
	if !c.limiter.Allow() {
		metrics.RecordScriptRejected(label)
		logging.Warn().Str("script", label).Msg("Script invocation rejected by spawn rate limiter")
		return nil, ErrSpawnLimited
	}

	start := time.Now()

	stdout, err := c.breaker.Execute(func() ([]byte, error) {
		runCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		argv := append([]string{script}, args...)
		stdout, stderr, err := c.run(runCtx, c.cfg.PythonBin, argv...)
		if err != nil {
			if msg := strings.TrimSpace(string(stderr)); msg != "" {
				return nil, fmt.Errorf("%s: %w: %s", filepath.Base(script), err, msg)
			}
			return nil, fmt.Errorf("%s: %w", filepath.Base(script), err)
		}

		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			logging.Warn().Str("script", label).Str("stderr", msg).Msg("Script wrote to stderr on success")
		}
		return stdout, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordBreakerRequest(breakerName, "rejected")
			metrics.RecordScriptRejected(label)
			return nil, fmt.Errorf("script bridge unavailable: %w", err)
		}

		metrics.RecordBreakerRequest(breakerName, "failure")
		metrics.RecordScriptInvocation(label, time.Since(start), 0, err)
		logging.Error().Err(err).Str("script", label).Dur("duration", time.Since(start)).Msg("Script invocation failed")
		return nil, err
	}

	metrics.RecordBreakerRequest(breakerName, "success")
	metrics.RecordScriptInvocation(label, time.Since(start), len(stdout), nil)
	logging.Debug().Str("script", label).Dur("duration", time.Since(start)).Int("stdout_bytes", len(stdout)).Msg("Script invocation complete")
	return stdout, nil
}

// execScript is the production CommandRunner.
func execScript(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // G204: interpreter and script paths come from configuration

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// stateToFloat converts circuit breaker state to the metric encoding.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to a label for logging.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
