// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/pitlane/internal/data"
	"github.com/tomtom215/pitlane/internal/logging"
	"github.com/tomtom215/pitlane/internal/slug"
)

// genericPageError is the message shown when page assembly fails for a
// reason other than missing data. Missing data files never take this
// path; they degrade to empty view models.
const genericPageError = "Something went wrong while loading this page."

// Root redirects the landing URL to the schedule page.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/schedule", http.StatusFound)
}

// NotFound renders the not-found page. Used both as the router fallback
// and, with a message, for entity lookups that miss.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.renderNotFound(w, "")
}

func (h *Handler) renderNotFound(w http.ResponseWriter, message string) {
	h.engine.Render(w, http.StatusNotFound, "not_found", NotFoundView{
		Page:    Page{Title: "Not Found"},
		Message: message,
	})
}

// Schedule renders the season schedule.
func (h *Handler) Schedule(w http.ResponseWriter, _ *http.Request) {
	view := ScheduleView{Page: Page{Title: "Race Schedule"}}
	view.Sessions = h.store.Schedule()
	h.engine.Render(w, http.StatusOK, "schedule", view)
}

// Drivers renders the driver list, joined with team colors.
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	view := DriversView{Page: Page{Title: "Drivers"}}

	var (
		drivers []data.Driver
		teams   []data.Team
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		drivers = h.store.Drivers()
		return nil
	})
	g.Go(func() error {
		teams = h.store.Teams()
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.Error().Err(err).Msg("Drivers page assembly failed")
		view.Error = genericPageError
		h.engine.Render(w, http.StatusInternalServerError, "drivers", view)
		return
	}

	view.Drivers = driverRows(drivers, teams)
	h.engine.Render(w, http.StatusOK, "drivers", view)
}

// DriverDetail renders one driver with description and statistics. The
// stats file is addressed by the requested slug, so it loads in the same
// fan-out as the lookup files.
func (h *Handler) DriverDetail(w http.ResponseWriter, r *http.Request) {
	driverID := r.PathValue("driverId")

	var (
		drivers      []data.Driver
		teams        []data.Team
		descriptions map[string]string
		stats        *data.DriverStats
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		drivers = h.store.Drivers()
		return nil
	})
	g.Go(func() error {
		teams = h.store.Teams()
		return nil
	})
	g.Go(func() error {
		descriptions = h.store.DriverDescriptions()
		return nil
	})
	g.Go(func() error {
		stats = h.store.DriverStats(driverID)
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.Error().Err(err).Msg("Driver detail assembly failed")
		h.engine.Render(w, http.StatusInternalServerError, "driver_detail", DriverDetailView{
			Page: Page{Title: "Driver", Error: genericPageError},
		})
		return
	}

	driver := data.DriverBySlug(drivers, driverID)
	if driver == nil {
		h.renderNotFound(w, "No driver matches this identifier.")
		return
	}

	h.engine.Render(w, http.StatusOK, "driver_detail", DriverDetailView{
		Page:        Page{Title: driver.FullName},
		Driver:      *driver,
		Slug:        driverID,
		TeamColor:   data.TeamColor(teams, driver.TeamName),
		Description: descriptions[driver.FullName],
		Stats:       stats,
	})
}

// Teams renders the team list.
func (h *Handler) Teams(w http.ResponseWriter, _ *http.Request) {
	view := TeamsView{Page: Page{Title: "Teams"}}
	view.Teams = h.store.Teams()
	h.engine.Render(w, http.StatusOK, "teams", view)
}

// TeamDetail renders one team with its drivers joined by team name.
func (h *Handler) TeamDetail(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")

	var (
		teams   []data.Team
		drivers []data.Driver
	)
	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		teams = h.store.Teams()
		return nil
	})
	g.Go(func() error {
		drivers = h.store.Drivers()
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.Error().Err(err).Msg("Team detail assembly failed")
		h.engine.Render(w, http.StatusInternalServerError, "team_detail", TeamDetailView{
			Page: Page{Title: "Team", Error: genericPageError},
		})
		return
	}

	team := data.TeamBySlug(teams, teamID)
	if team == nil {
		h.renderNotFound(w, "No team matches this identifier.")
		return
	}

	rows := make([]DriverRow, 0)
	for _, d := range data.DriversByTeam(drivers, team.TeamName) {
		rows = append(rows, DriverRow{
			Driver:    d,
			Slug:      slug.Derive(d.FullName),
			TeamColor: team.Color,
		})
	}

	h.engine.Render(w, http.StatusOK, "team_detail", TeamDetailView{
		Page:    Page{Title: team.TeamName},
		Team:    *team,
		Drivers: rows,
	})
}

// Glossary renders the glossary of F1 terms.
func (h *Handler) Glossary(w http.ResponseWriter, _ *http.Request) {
	view := GlossaryView{Page: Page{Title: "Glossary"}}
	view.Entries = h.store.Glossary()
	h.engine.Render(w, http.StatusOK, "glossary", view)
}

// driverRows joins driver records with team colors and derives the URL
// slug for each driver from its full name.
func driverRows(drivers []data.Driver, teams []data.Team) []DriverRow {
	rows := make([]DriverRow, 0, len(drivers))
	for _, d := range drivers {
		rows = append(rows, DriverRow{
			Driver:    d,
			Slug:      slug.Derive(d.FullName),
			TeamColor: data.TeamColor(teams, d.TeamName),
		})
	}
	return rows
}
