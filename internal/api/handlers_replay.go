// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/pitlane/internal/data"
	"github.com/tomtom215/pitlane/internal/logging"
	"github.com/tomtom215/pitlane/internal/openf1"
	"github.com/tomtom215/pitlane/internal/slug"
)

// trackImagePrefix is the URL path under which the static file server
// exposes the tracks directory.
const trackImagePrefix = "/images/tracks/"

// Replay renders the replay viewer for one session: the schedule entry
// merged with race timing from the fetch script, the circuit's layout
// JSON (or null) and the probed track outline image.
func (h *Handler) Replay(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("session_key")

	var (
		schedule []data.ScheduleEntry
		layouts  map[string]json.RawMessage
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		schedule = h.store.Schedule()
		return nil
	})
	g.Go(func() error {
		layouts = h.store.TrackLayouts()
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.Error().Err(err).Msg("Replay page assembly failed")
		h.engine.Render(w, http.StatusInternalServerError, "replay", ReplayView{
			Page: Page{Title: "Replay", Error: genericPageError},
		})
		return
	}

	session := data.SessionByKey(schedule, key)
	if session == nil {
		h.renderNotFound(w, "No session matches this key.")
		return
	}

	view := ReplayView{
		Page:    Page{Title: session.MeetingName + " " + session.SessionName},
		Session: *session,
	}

	timing, err := h.replay.RaceTiming(r.Context(),
		strconv.Itoa(session.SessionYear), session.MeetingName, session.SessionName)
	if err != nil {
		status := http.StatusInternalServerError
		view.Error = err.Error()
		if openf1.IsUnavailable(err) {
			status = http.StatusServiceUnavailable
			view.Error = "Replay data is temporarily unavailable. Please try again shortly."
		}
		h.engine.Render(w, status, "replay", view)
		return
	}

	circuit := slug.Derive(session.CircuitShortName)
	view.RaceStartDate = timing.RaceStartDate
	view.RaceEndDate = timing.RaceEndDate
	view.Messages = timing.AllMessages
	view.Layout = layouts[circuit]
	if image := h.store.FindTrackImage(circuit); image != "" {
		view.TrackImage = trackImagePrefix + image
	}

	h.engine.Render(w, http.StatusOK, "replay", view)
}

// Locations proxies one window of driver location telemetry. The script's
// stdout is already the response body; it passes through untouched.
func (h *Handler) Locations(w http.ResponseWriter, r *http.Request) {
	req := LocationsRequest{
		SessionKey: r.PathValue("session_key"),
		StartTime:  r.PathValue("startTime"),
		EndTime:    r.PathValue("endTime"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	session := data.SessionByKey(h.store.Schedule(), req.SessionKey)
	if session == nil {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "No session matches this key.", nil)
		return
	}

	body, err := h.replay.Locations(r.Context(),
		strconv.Itoa(session.SessionYear), session.MeetingName, session.SessionName,
		req.StartTime, req.EndTime)
	if err != nil {
		if openf1.IsUnavailable(err) {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
				"Location data is temporarily unavailable.", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, ErrCodeUpstreamError, err.Error(), nil)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.Debug().Err(err).Msg("Locations response write failed")
	}
}
