// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/pitlane/internal/metrics"
)

// Healthz reports process liveness. The server has no stateful
// dependencies to probe: data files are re-read per request and the fetch
// scripts are spawned on demand, so being able to answer is the health
// signal.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	metrics.UpdateUptime(h.startTime)

	respondJSON(w, http.StatusOK, &APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":         "ok",
			"version":        h.version,
			"uptime_seconds": time.Since(h.startTime).Seconds(),
		},
	})
}
