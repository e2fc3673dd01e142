// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package data

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pitlane/internal/config"
	"github.com/tomtom215/pitlane/internal/logging"
	"github.com/tomtom215/pitlane/internal/metrics"
	"github.com/tomtom215/pitlane/internal/slug"
)

// Data file names under the data directory.
const (
	scheduleFile     = "schedule.json"
	driversFile      = "drivers.json"
	teamsFile        = "teams.json"
	glossaryFile     = "glossary.json"
	trackLayoutsFile = "track_layouts.json"
	descriptionsFile = "driver_descriptions.json"
)

// Load result labels for the data file metrics.
const (
	LoadOK        = "ok"
	LoadMissing   = "missing"
	LoadMalformed = "malformed"
)

// Store reads the pre-generated JSON data files. Every loader re-reads
// its file per call and degrades to the type's empty value on any read or
// parse failure, so callers never see an error from this layer. There is
// no caching and no write path.
type Store struct {
	dataDir   string
	statsDir  string
	tracksDir string
}

// NewStore creates a Store bound to the configured data directories.
func NewStore(cfg config.DataConfig) *Store {
	return &Store{
		dataDir:   cfg.Dir,
		statsDir:  cfg.StatsDir,
		tracksDir: cfg.TracksDir,
	}
}

// loadFile reads and decodes one JSON file, returning the zero value of T
// together with a load result label when the file is missing or malformed.
func loadFile[T any](path string) (T, string) {
	var zero T

	raw, err := os.ReadFile(path) //nolint:gosec // G304: path is assembled from configuration and derived slugs
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Debug().Str("path", path).Msg("Data file not found, serving empty data")
		} else {
			logging.Warn().Err(err).Str("path", path).Msg("Data file unreadable, serving empty data")
		}
		return zero, LoadMissing
	}

	var parsed T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Data file malformed, serving empty data")
		return zero, LoadMalformed
	}

	return parsed, LoadOK
}

// Schedule loads schedule.json, the season's sessions sorted by start date.
func (s *Store) Schedule() []ScheduleEntry {
	start := time.Now()
	entries, result := loadFile[[]ScheduleEntry](filepath.Join(s.dataDir, scheduleFile))
	metrics.RecordDataFileLoad("schedule", result, time.Since(start), len(entries))
	return entries
}

// Drivers loads drivers.json, sorted by team then driver name.
func (s *Store) Drivers() []Driver {
	start := time.Now()
	drivers, result := loadFile[[]Driver](filepath.Join(s.dataDir, driversFile))
	metrics.RecordDataFileLoad("drivers", result, time.Since(start), len(drivers))
	return drivers
}

// Teams loads teams.json.
func (s *Store) Teams() []Team {
	start := time.Now()
	teams, result := loadFile[[]Team](filepath.Join(s.dataDir, teamsFile))
	metrics.RecordDataFileLoad("teams", result, time.Since(start), len(teams))
	return teams
}

// Glossary loads glossary.json.
func (s *Store) Glossary() []GlossaryEntry {
	start := time.Now()
	entries, result := loadFile[[]GlossaryEntry](filepath.Join(s.dataDir, glossaryFile))
	metrics.RecordDataFileLoad("glossary", result, time.Since(start), len(entries))
	return entries
}

// TrackLayouts loads track_layouts.json, keyed by normalized circuit short
// name. Layout values are opaque JSON passed through to the replay viewer.
func (s *Store) TrackLayouts() map[string]json.RawMessage {
	start := time.Now()
	layouts, result := loadFile[map[string]json.RawMessage](filepath.Join(s.dataDir, trackLayoutsFile))
	metrics.RecordDataFileLoad("track_layouts", result, time.Since(start), len(layouts))
	return layouts
}

// DriverDescriptions loads driver_descriptions.json, keyed by the driver's
// full name.
func (s *Store) DriverDescriptions() map[string]string {
	start := time.Now()
	descriptions, result := loadFile[map[string]string](filepath.Join(s.dataDir, descriptionsFile))
	metrics.RecordDataFileLoad("driver_descriptions", result, time.Since(start), len(descriptions))
	return descriptions
}

// DriverStats loads stats/{slug}.json for one driver. driverSlug comes
// from the request path, so anything that is not already a derived slug
// (lowercase letters, digits, hyphens) is rejected before it can reach the
// filesystem. Returns nil when the driver has no stats file.
func (s *Store) DriverStats(driverSlug string) *DriverStats {
	if driverSlug == "" || slug.Derive(driverSlug) != driverSlug {
		return nil
	}

	start := time.Now()
	stats, result := loadFile[*DriverStats](filepath.Join(s.statsDir, driverSlug+".json"))
	entities := 0
	if stats != nil {
		entities = 1
	}
	metrics.RecordDataFileLoad("stats", result, time.Since(start), entities)
	return stats
}

// DriverBySlug returns the first driver whose derived full-name slug
// matches want, or nil. Lookups derive the slug rather than trusting the
// stored slug field so URL generation and matching cannot drift apart.
func DriverBySlug(drivers []Driver, want string) *Driver {
	for i := range drivers {
		if slug.Derive(drivers[i].FullName) == want {
			return &drivers[i]
		}
	}
	return nil
}

// TeamBySlug returns the first team whose slug field matches want, or nil.
func TeamBySlug(teams []Team, want string) *Team {
	for i := range teams {
		if teams[i].Slug == want {
			return &teams[i]
		}
	}
	return nil
}

// SessionByKey returns the first schedule entry whose session key matches
// the given string form, or nil.
func SessionByKey(entries []ScheduleEntry, key string) *ScheduleEntry {
	for i := range entries {
		if entries[i].SessionKey.String() == key {
			return &entries[i]
		}
	}
	return nil
}

// DriversByTeam returns the drivers whose team name equals teamName,
// preserving file order.
func DriversByTeam(drivers []Driver, teamName string) []Driver {
	var members []Driver
	for _, d := range drivers {
		if d.TeamName == teamName {
			members = append(members, d)
		}
	}
	return members
}

// TeamColor returns the color of the first team named teamName, or the
// empty string when the team is unknown.
func TeamColor(teams []Team, teamName string) string {
	for i := range teams {
		if teams[i].TeamName == teamName {
			return teams[i].Color
		}
	}
	return ""
}
