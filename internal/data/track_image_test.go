// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/pitlane/internal/config"
)

func newTracksStore(t *testing.T, images ...string) *Store {
	t.Helper()

	tracksDir := t.TempDir()
	for _, name := range images {
		if err := os.WriteFile(filepath.Join(tracksDir, name), []byte("img"), 0o600); err != nil {
			t.Fatalf("Failed to write track image %s: %v", name, err)
		}
	}

	return NewStore(config.DataConfig{
		Dir:       t.TempDir(),
		StatsDir:  t.TempDir(),
		PublicDir: t.TempDir(),
		TracksDir: tracksDir,
	})
}

func TestFindTrackImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		images []string
		slug   string
		want   string
	}{
		{
			name:   "png only",
			images: []string{"bahrain.png"},
			slug:   "bahrain",
			want:   "bahrain.png",
		},
		{
			name:   "avif beats png",
			images: []string{"bahrain.png", "bahrain.avif"},
			slug:   "bahrain",
			want:   "bahrain.avif",
		},
		{
			name:   "png beats webp",
			images: []string{"bahrain.webp", "bahrain.png"},
			slug:   "bahrain",
			want:   "bahrain.png",
		},
		{
			name:   "jpg beats jpeg",
			images: []string{"monaco.jpeg", "monaco.jpg"},
			slug:   "monaco",
			want:   "monaco.jpg",
		},
		{
			name:   "jpeg as last resort",
			images: []string{"suzuka.jpeg"},
			slug:   "suzuka",
			want:   "suzuka.jpeg",
		},
		{
			name:   "no image",
			images: []string{"bahrain.png"},
			slug:   "monza",
			want:   "",
		},
		{
			name: "empty slug",
			slug: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTracksStore(t, tt.images...)
			if got := store.FindTrackImage(tt.slug); got != tt.want {
				t.Errorf("FindTrackImage(%q) = %q, want %q", tt.slug, got, tt.want)
			}
		})
	}
}
