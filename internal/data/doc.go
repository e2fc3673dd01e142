// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package data reads the pre-generated JSON files that feed every page:
// schedule, drivers, teams, glossary, track layouts, per-driver stats and
// driver descriptions.
//
// # Data Files
//
// All files live under the configured data directory (default
// ./public/data) and are produced offline by the generator scripts:
//
//	schedule.json             sessions for the season, sorted by start date
//	drivers.json              driver records, sorted by team then name
//	teams.json                team records with color and metadata
//	glossary.json             term/definition pairs
//	track_layouts.json        circuit slug -> opaque layout JSON
//	driver_descriptions.json  driver full name -> free text
//	stats/{slug}.json         per-driver season and career stats
//
// Track images live separately under the tracks directory (default
// ./public/images/tracks) and are resolved by FindTrackImage with the
// fixed extension priority avif > png > webp > jpg > jpeg.
//
// # Degradation
//
// Loaders never return errors. A missing or malformed file logs a warning,
// records a load metric, and yields the type's empty value, so pages render
// in an empty state instead of failing. Pages that require a specific
// entity (driver detail, team detail, replay) turn an empty lookup into a
// 404 at the handler layer.
//
// # Lookups
//
// Every lookup is a linear scan returning the first match; duplicate slugs
// or session keys silently resolve to the earliest record. Driver lookups
// derive the slug from the full name on both sides (URL generation and
// matching), so the stored slug field is carried but never trusted.
//
// # Freshness and Thread Safety
//
// Nothing is cached: each loader call re-reads its file, so regenerating
// the JSON on disk takes effect on the next request. The Store holds only
// immutable directory paths and is safe for concurrent use.
package data
