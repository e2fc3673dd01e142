// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package render renders the dashboard's HTML pages from templates
// embedded in the binary.
//
// # Templates
//
// templates/layout.html is the shared skeleton (navigation, error banner,
// footer); every other templates/*.html file is one page defining a
// "content" block. Pages are addressed by file name without extension:
//
//	engine, err := render.New()
//	engine.Render(w, http.StatusOK, "schedule", view)
//
// # View Models
//
// Each page's view model carries a Title and an Error field alongside its
// data. A non-empty Error renders the page in a degraded state (banner in
// the layout, fallback copy in the content block) instead of a raw
// failure page.
//
// # Functions
//
// Templates have four helpers: formatDate (ISO 8601 timestamp to display
// text, unparseable input passed through), upper, toJSON (embed a value
// as a JSON literal in a script block) and add.
//
// # Testing
//
// NewFromFS accepts any fs.FS with the same layout, so tests build tiny
// template sets with fstest.MapFS instead of touching the embedded ones.
package render
