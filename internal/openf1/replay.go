// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package openf1

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

// RaceTiming is the race timing script's output: the real race start and
// end derived from race control messages, plus the full message list the
// replay viewer uses for flags and retirements. A populated Error field
// means the script failed even though it exited zero.
type RaceTiming struct {
	RaceStartDate string          `json:"race_start_date"`
	RaceEndDate   string          `json:"race_end_date"`
	AllMessages   json.RawMessage `json:"all_messages"`
	Error         string          `json:"error,omitempty"`
}

// RaceTiming fetches the race window for a session. Arguments are passed
// positionally: the race_times mode tag, then year, event name and session
// name as the script expects them.
func (c *Client) RaceTiming(ctx context.Context, year, event, session string) (*RaceTiming, error) {
	stdout, err := c.invoke(ctx, c.cfg.RaceTimingScript, scriptRaceTiming, []string{"race_times", year, event, session})
	if err != nil {
		return nil, err
	}

	var timing RaceTiming
	if err := json.Unmarshal(stdout, &timing); err != nil {
		return nil, fmt.Errorf("race timing output: %w", err)
	}
	if timing.Error != "" {
		return nil, fmt.Errorf("race timing script: %s", timing.Error)
	}
	return &timing, nil
}

// Locations fetches a chunk of location and position telemetry. Arguments
// are positional: year, event name, session name, start time, end time.
// The script's stdout is validated as JSON and returned untouched so the
// handler can pass it through as the response body.
func (c *Client) Locations(ctx context.Context, year, event, session, start, end string) ([]byte, error) {
	stdout, err := c.invoke(ctx, c.cfg.LocationsScript, scriptLocations, []string{year, event, session, start, end})
	if err != nil {
		return nil, err
	}

	if !json.Valid(stdout) {
		return nil, fmt.Errorf("locations output: script returned invalid JSON")
	}
	return stdout, nil
}
