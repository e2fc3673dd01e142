// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"github.com/goccy/go-json"

	"github.com/tomtom215/pitlane/internal/data"
)

// Page carries the fields shared by every view model. A non-empty Error
// renders the page in a degraded state instead of a raw failure page.
type Page struct {
	Title string
	Error string
}

// DriverRow is one driver entry on a list page, joined with its team
// color and addressed by the slug derived from the driver's full name.
type DriverRow struct {
	data.Driver
	Slug      string
	TeamColor string
}

// ScheduleView backs the schedule page.
type ScheduleView struct {
	Page
	Sessions []data.ScheduleEntry
}

// DriversView backs the drivers list page.
type DriversView struct {
	Page
	Drivers []DriverRow
}

// DriverDetailView backs the driver detail page.
type DriverDetailView struct {
	Page
	Driver      data.Driver
	Slug        string
	TeamColor   string
	Description string
	Stats       *data.DriverStats
}

// TeamsView backs the teams list page.
type TeamsView struct {
	Page
	Teams []data.Team
}

// TeamDetailView backs the team detail page.
type TeamDetailView struct {
	Page
	Team    data.Team
	Drivers []DriverRow
}

// GlossaryView backs the glossary page.
type GlossaryView struct {
	Page
	Entries []data.GlossaryEntry
}

// ReplayView backs the replay page. Messages and Layout are embedded
// verbatim into the viewer's script block; a missing layout is the JSON
// literal null.
type ReplayView struct {
	Page
	Session       data.ScheduleEntry
	RaceStartDate string
	RaceEndDate   string
	Messages      json.RawMessage
	Layout        json.RawMessage
	TrackImage    string
}

// NotFoundView backs the not-found page.
type NotFoundView struct {
	Page
	Message string
}
