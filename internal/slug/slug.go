// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package slug derives URL-safe identifiers from display names.
//
// The same derivation is used to generate identifiers from data records
// and to match incoming path identifiers, so it must be deterministic and
// idempotent: Derive(Derive(s)) == Derive(s) for all inputs.
package slug

import (
	"strings"
	"unicode"
)

// Derive normalizes free text into a URL-safe identifier: lowercase,
// characters outside [a-z0-9\s-] removed, whitespace and hyphen runs
// collapsed to a single hyphen, no leading or trailing hyphens.
//
//	Derive("Lewis Hamilton")   == "lewis-hamilton"
//	Derive("Jean-Eric Vergne") == "jean-eric-vergne"
func Derive(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	// pending marks an unflushed separator (whitespace or hyphen run).
	// It is only written when followed by another kept character, which
	// trims leading/trailing hyphens and collapses runs in one pass.
	pending := false

	for _, r := range strings.ToLower(text) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pending = true
		}
		// Everything else is outside the slug alphabet and is dropped
		// without acting as a separator.
	}

	return b.String()
}
