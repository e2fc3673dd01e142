// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package data

import (
	"os"
	"path/filepath"
)

// trackImageExtensions is the probe order. The first extension that exists
// on disk wins, so a circuit shipped as both avif and png serves the avif.
var trackImageExtensions = []string{".avif", ".png", ".webp", ".jpg", ".jpeg"}

// FindTrackImage probes the tracks directory for an image named after the
// normalized circuit short name and returns the matched file name
// ("bahrain.png"), or the empty string when no candidate exists. The
// caller owns mapping the file name onto its public URL.
func (s *Store) FindTrackImage(circuitSlug string) string {
	if circuitSlug == "" {
		return ""
	}

	for _, ext := range trackImageExtensions {
		name := circuitSlug + ext
		if _, err := os.Stat(filepath.Join(s.tracksDir, name)); err == nil {
			return name
		}
	}
	return ""
}
