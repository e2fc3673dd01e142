// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"context"
	"time"

	"github.com/tomtom215/pitlane/internal/config"
	"github.com/tomtom215/pitlane/internal/data"
	"github.com/tomtom215/pitlane/internal/openf1"
	"github.com/tomtom215/pitlane/internal/render"
)

// ReplayFetcher is the bridge surface the handlers need. *openf1.Client
// satisfies it; tests substitute a stub so no subprocess is spawned.
type ReplayFetcher interface {
	RaceTiming(ctx context.Context, year, event, session string) (*openf1.RaceTiming, error)
	Locations(ctx context.Context, year, event, session, start, end string) ([]byte, error)
}

// Handler contains dependencies for the page and API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_pages.go: schedule, drivers, teams and glossary pages
//   - handlers_replay.go: replay page and the locations API
//   - handlers_health.go: health endpoint
type Handler struct {
	store     *data.Store
	engine    *render.Engine
	replay    ReplayFetcher
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new handler with all required dependencies.
// version is the build version string reported by the health endpoint.
//
// Every page handler follows the same pipeline: fan out the independent
// data file loads, join the results into a view model, render. Data files
// are re-read per request; the store degrades missing or malformed files
// to empty values so pages render with empty states rather than failing.
func NewHandler(store *data.Store, engine *render.Engine, replay ReplayFetcher, cfg *config.Config, version string) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		replay:    replay,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
