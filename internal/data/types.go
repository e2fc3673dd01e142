// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package data

import (
	"github.com/goccy/go-json"
)

// SessionKey identifies a session. Source data emits it as a JSON number
// while replay URLs carry it as a path string, so it decodes from either
// form and is always compared through its canonical string.
type SessionKey string

// UnmarshalJSON accepts both `9472` and `"9472"`. Numbers keep their
// literal text so no precision is lost in the round trip.
func (k *SessionKey) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*k = SessionKey(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*k = SessionKey(n.String())
	return nil
}

// String returns the canonical string form used for lookups.
func (k SessionKey) String() string {
	return string(k)
}

// StatValue holds one stat cell. The generator emits these either as a
// JSON number or as display text such as "-" or "3 (x2)"; both decode to
// the text shown on the driver detail page.
type StatValue string

// UnmarshalJSON accepts a JSON number or string.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = StatValue(n.String())
	return nil
}

// String returns the display text.
func (v StatValue) String() string {
	return string(v)
}

// ScheduleEntry represents one session in schedule.json.
type ScheduleEntry struct {
	SessionKey       SessionKey `json:"session_key"`
	SessionName      string     `json:"session_name"`
	SessionYear      int        `json:"session_year"`
	CountryName      string     `json:"country_name"`
	MeetingName      string     `json:"meeting_name"`
	DateStart        string     `json:"date_start"`
	CircuitShortName string     `json:"circuit_short_name"`
}

// Driver represents one record in drivers.json.
type Driver struct {
	Slug        string `json:"slug"`
	FullName    string `json:"full_name"`
	Code        string `json:"code"`
	Number      string `json:"number"` // permanent number, kept as text ("1", "44", or empty)
	TeamName    string `json:"team_name"`
	Nationality string `json:"nationality"`
}

// Team represents one record in teams.json. Slug is the stable URL
// identifier; TeamName is the join key against Driver.TeamName.
type Team struct {
	Slug         string `json:"slug"`
	TeamName     string `json:"team_name"`
	FullTeamName string `json:"full_team_name"`
	Color        string `json:"color"`
	Base         string `json:"base"`
	TeamChief    string `json:"team_chief"`
	Chassis      string `json:"chassis"`
	PowerUnit    string `json:"power_unit"`
}

// GlossaryEntry represents one term in glossary.json.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// SeasonStats mirrors the season block of stats/{slug}.json.
type SeasonStats struct {
	SeasonYear     int       `json:"season_year"`
	SeasonPosition StatValue `json:"season_position"`
	SeasonPoints   int       `json:"season_points"`
	GPRaces        int       `json:"gp_races"`
	GPPoints       int       `json:"gp_points"`
	GPPodiums      int       `json:"gp_podiums"`
	GPTop10s       int       `json:"gp_top10s"`
	Wins           int       `json:"wins"`
	DNFs           int       `json:"dnfs"`
	BestGrid       StatValue `json:"best_grid"`
	Poles          int       `json:"poles"`
	SprintRaces    int       `json:"sprint_races"`
	SprintPoints   int       `json:"sprint_points"`
	SprintPodiums  int       `json:"sprint_podiums"`
	SprintPoles    int       `json:"sprint_poles"`
	SprintTop10s   int       `json:"sprint_top10s"`
}

// CareerStats mirrors the career block of stats/{slug}.json.
type CareerStats struct {
	GPEntered          int       `json:"gp_entered"`
	Points             int       `json:"points"`
	BestFinish         StatValue `json:"best_finish"` // "3 (x2)" style, or "-"
	Podiums            int       `json:"podiums"`
	BestGrid           StatValue `json:"best_grid"`
	Poles              int       `json:"poles"`
	WorldChampionships int       `json:"world_championships"`
	DNFs               int       `json:"dnfs"`
}

// DriverStats is the full per-driver stats file, located by the driver's
// derived slug.
type DriverStats struct {
	Season SeasonStats `json:"season"`
	Career CareerStats `json:"career"`
}
