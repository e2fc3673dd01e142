// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package render renders the dashboard's HTML pages.
//
// engine.go - Page Template Engine
//
// This file implements the template rendering engine for the dashboard:
//   - html/template rendering over templates embedded at compile time
//   - A shared base layout composed with one content template per page
//   - Template functions for date formatting and JSON embedding
//   - Buffered execution so a mid-render failure never emits a torn page
//
// Security:
//   - All view data is HTML-escaped by default
//   - Template injection is prevented through Go's html/template package
//   - toJSON output is scoped to script blocks fed from our own data files
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pitlane/internal/logging"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// layoutFile is the shared skeleton every page template plugs into via
// its "content" block.
const layoutFile = "templates/layout.html"

// Engine holds the parsed page templates, keyed by page name
// (template file name without directory or extension).
type Engine struct {
	pages map[string]*template.Template
}

// New creates an engine from the templates embedded in the binary.
func New() (*Engine, error) {
	return NewFromFS(embeddedTemplates)
}

// NewFromFS creates an engine from an arbitrary filesystem holding
// templates/layout.html plus one or more page templates. Tests use this
// with fstest.MapFS.
func NewFromFS(fsys fs.FS) (*Engine, error) {
	names, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}

		tmpl, err := template.New(path.Base(layoutFile)).Funcs(buildFuncMap()).ParseFS(fsys, layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		page := strings.TrimSuffix(path.Base(name), ".html")
		pages[page] = tmpl
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no page templates found alongside %s", layoutFile)
	}

	return &Engine{pages: pages}, nil
}

// Render executes the named page template with the provided view data and
// writes it with the given status code. Execution happens into a buffer
// first; failures are logged and converted to a plain 500 so the client
// never receives half a page.
func (e *Engine) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tmpl, ok := e.pages[page]
	if !ok {
		logging.Error().Str("page", page).Msg("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Error().Err(err).Str("page", page).Msg("Template execution failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Debug().Err(err).Str("page", page).Msg("Response write failed")
	}
}

// Pages returns the names of the parsed page templates, for startup logs.
func (e *Engine) Pages() []string {
	names := make([]string, 0, len(e.pages))
	for name := range e.pages {
		names = append(names, name)
	}
	return names
}

// buildFuncMap creates the template function map.
func buildFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": formatDate,
		"upper":      strings.ToUpper,
		"toJSON":     toJSON,
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// formatDate renders an ISO 8601 timestamp from the data files in a
// human-readable form, normalized to UTC. Unparseable input is shown
// as-is rather than breaking the page.
func formatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format("Mon 02 Jan 2006, 15:04 MST")
}

// toJSON embeds a value as a JSON literal inside a script block. The
// inputs are our own generated data files and bridge output, never user
// content.
func toJSON(v interface{}) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		logging.Warn().Err(err).Msg("Template JSON encoding failed")
		return template.JS("null")
	}
	return template.JS(b) //nolint:gosec // G203: values come from our own data files and bridge output
}
