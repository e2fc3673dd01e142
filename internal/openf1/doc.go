// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package openf1 bridges to the external Python scripts that fetch replay
// data from the OpenF1 API.
//
// # Process Contract
//
// Each call spawns the configured interpreter with positional string
// arguments and captures stdout and stderr separately:
//
//	python3 get_replay_data.py race_times <year> <event> <session>
//	python3 get_location_data.py <year> <event> <session> <start> <end>
//
// Exit code 0 resolves with the complete stdout. A non-zero exit rejects
// with the trimmed stderr text when present, otherwise the exit error.
// Stderr written alongside exit 0 is logged at warn and does not fail the
// call. The race timing output is additionally parsed: a JSON `error`
// field in it is a failure even on exit 0. The locations output is only
// validated as JSON and passed through byte-for-byte.
//
// # Protection
//
// There are no retries anywhere. Two guards bound the damage a failing or
// slow upstream can do:
//
//   - A shared sony/gobreaker circuit breaker opens after the configured
//     number of consecutive spawn failures, rejecting calls immediately
//     until the recovery timeout elapses.
//   - A golang.org/x/time/rate limiter caps process creation; calls over
//     the limit fail with ErrSpawnLimited instead of queueing.
//
// IsUnavailable distinguishes these self-protection rejections from real
// script failures so handlers can answer 503 instead of 500.
//
// Every invocation carries a context deadline from the configured script
// timeout; a hung interpreter is killed when it expires.
//
// # Testing
//
// WithCommandRunner injects a fake process runner so tests never spawn an
// interpreter:
//
//	client := openf1.NewClient(cfg)
//	client.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
//	    return []byte(`{"race_start_date": "..."}`), nil, nil
//	})
package openf1
