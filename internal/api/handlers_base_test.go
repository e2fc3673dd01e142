// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/pitlane/internal/config"
	"github.com/tomtom215/pitlane/internal/data"
	"github.com/tomtom215/pitlane/internal/openf1"
	"github.com/tomtom215/pitlane/internal/render"
)

// =====================================================
// Test Fixtures
// =====================================================

// Data file fixtures mirroring the generator's output shape. The second
// schedule entry carries its session key as a JSON string to cover both
// encodings, and the Pérez record covers non-ASCII slug derivation.
const (
	testScheduleJSON = `[
		{"session_key": 9472, "session_name": "Race", "session_year": 2024, "country_name": "Bahrain", "meeting_name": "Bahrain Grand Prix", "date_start": "2024-03-02T15:00:00+00:00", "circuit_short_name": "Sakhir"},
		{"session_key": "9480", "session_name": "Sprint", "session_year": 2024, "country_name": "China", "meeting_name": "Chinese Grand Prix", "date_start": "2024-04-20T03:00:00+00:00", "circuit_short_name": "Shanghai"}
	]`

	testDriversJSON = `[
		{"slug": "max-verstappen", "full_name": "Max Verstappen", "code": "ver", "number": "1", "team_name": "Red Bull Racing", "nationality": "Dutch"},
		{"slug": "sergio-perez", "full_name": "Sergio Pérez", "code": "per", "number": "11", "team_name": "Red Bull Racing", "nationality": "Mexican"},
		{"slug": "lewis-hamilton", "full_name": "Lewis Hamilton", "code": "ham", "number": "44", "team_name": "Mercedes", "nationality": "British"}
	]`

	testTeamsJSON = `[
		{"slug": "red-bull-racing", "team_name": "Red Bull Racing", "full_team_name": "Oracle Red Bull Racing", "color": "#3671C6", "base": "Milton Keynes, United Kingdom", "team_chief": "Christian Horner", "chassis": "RB20", "power_unit": "Honda RBPT"},
		{"slug": "mercedes", "team_name": "Mercedes", "full_team_name": "Mercedes-AMG PETRONAS F1 Team", "color": "#27F4D2", "base": "Brackley, United Kingdom", "team_chief": "Toto Wolff", "chassis": "W15", "power_unit": "Mercedes"}
	]`

	testGlossaryJSON = `[
		{"term": "DRS", "definition": "Drag Reduction System, a moveable rear wing flap that reduces drag."},
		{"term": "Box", "definition": "Radio call instructing the driver to pit."}
	]`

	testLayoutsJSON = `{"sakhir":{"x":[0,120,240],"y":[0,80,0]}}`

	testDescriptionsJSON = `{"Max Verstappen": "Relentless front-runner and four-time world champion."}`

	testVerstappenStatsJSON = `{
		"season": {"season_year": 2024, "season_position": 1, "season_points": 437, "gp_races": 24, "gp_points": 414, "gp_podiums": 14, "gp_top10s": 23, "wins": 9, "dnfs": 1, "best_grid": 1, "poles": 8, "sprint_races": 6, "sprint_points": 23, "sprint_podiums": 3, "sprint_poles": 2, "sprint_top10s": 6},
		"career": {"gp_entered": 209, "points": 3023, "best_finish": "1 (x63)", "podiums": 112, "best_grid": 1, "poles": 40, "world_championships": 4, "dnfs": 13}
	}`
)

// testConfig returns a config rooted in a fresh temp directory with rate
// limiting disabled. Data directories exist but start empty.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	statsDir := filepath.Join(dataDir, "stats")
	publicDir := filepath.Join(base, "public")
	tracksDir := filepath.Join(publicDir, "images", "tracks")

	for _, dir := range []string{statsDir, tracksDir, filepath.Join(publicDir, "css")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	return &config.Config{
		Server: config.ServerConfig{
			Host:              "127.0.0.1",
			Port:              3000,
			CORSOrigins:       []string{"*"},
			PageRateLimit:     120,
			APIRateLimit:      30,
			RateLimitDisabled: true,
		},
		Data: config.DataConfig{
			Dir:       dataDir,
			StatsDir:  statsDir,
			PublicDir: publicDir,
			TracksDir: tracksDir,
		},
		Scripts: config.ScriptsConfig{
			PythonBin:        "python3",
			RaceTimingScript: "./scripts/get_replay_data.py",
			LocationsScript:  "./scripts/get_location_data.py",
			Timeout:          time.Second,
		},
		Logging: config.LoggingConfig{Level: "error", Format: "console"},
	}
}

// writeTestFile writes one fixture file, failing the test on error.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// seedTestData populates the config's data directories with the standard
// fixture set, including one driver stats file and one track image.
func seedTestData(t *testing.T, cfg *config.Config) {
	t.Helper()

	writeTestFile(t, filepath.Join(cfg.Data.Dir, "schedule.json"), testScheduleJSON)
	writeTestFile(t, filepath.Join(cfg.Data.Dir, "drivers.json"), testDriversJSON)
	writeTestFile(t, filepath.Join(cfg.Data.Dir, "teams.json"), testTeamsJSON)
	writeTestFile(t, filepath.Join(cfg.Data.Dir, "glossary.json"), testGlossaryJSON)
	writeTestFile(t, filepath.Join(cfg.Data.Dir, "track_layouts.json"), testLayoutsJSON)
	writeTestFile(t, filepath.Join(cfg.Data.Dir, "driver_descriptions.json"), testDescriptionsJSON)
	writeTestFile(t, filepath.Join(cfg.Data.StatsDir, "max-verstappen.json"), testVerstappenStatsJSON)
	writeTestFile(t, filepath.Join(cfg.Data.TracksDir, "sakhir.png"), "not-a-real-png")
}

// =====================================================
// Replay Fetcher Stub
// =====================================================

// stubFetcher satisfies ReplayFetcher without spawning processes. Nil
// function fields fall back to benign canned responses.
type stubFetcher struct {
	raceTimingFn func(ctx context.Context, year, event, session string) (*openf1.RaceTiming, error)
	locationsFn  func(ctx context.Context, year, event, session, start, end string) ([]byte, error)
}

func (s *stubFetcher) RaceTiming(ctx context.Context, year, event, session string) (*openf1.RaceTiming, error) {
	if s.raceTimingFn == nil {
		return &openf1.RaceTiming{
			RaceStartDate: "2024-03-02T15:03:41+00:00",
			RaceEndDate:   "2024-03-02T16:43:02+00:00",
		}, nil
	}
	return s.raceTimingFn(ctx, year, event, session)
}

func (s *stubFetcher) Locations(ctx context.Context, year, event, session, start, end string) ([]byte, error) {
	if s.locationsFn == nil {
		return []byte(`{"locations":[],"positions":[]}`), nil
	}
	return s.locationsFn(ctx, year, event, session, start, end)
}

// =====================================================
// Test Server Construction
// =====================================================

// newTestRouter builds the full routed handler the way main does, with
// the stub standing in for the script bridge.
func newTestRouter(t *testing.T, cfg *config.Config, fetcher ReplayFetcher) http.Handler {
	t.Helper()

	engine, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	handler := NewHandler(data.NewStore(cfg.Data), engine, fetcher, cfg, "test")
	return NewRouter(handler, NewMiddleware(cfg.Server)).SetupChi()
}

// doGet performs one GET against the routed handler.
func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// =====================================================
// Handler Construction Tests
// =====================================================

// TestNewHandler tests the NewHandler constructor.
func TestNewHandler(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	engine, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	handler := NewHandler(data.NewStore(cfg.Data), engine, &stubFetcher{}, cfg, "test")

	if handler == nil {
		t.Fatal("NewHandler returned nil")
	}
	if handler.store == nil {
		t.Error("Expected store to be set")
	}
	if handler.engine == nil {
		t.Error("Expected engine to be set")
	}
	if handler.replay == nil {
		t.Error("Expected replay fetcher to be set")
	}
	if handler.startTime.IsZero() {
		t.Error("Expected start time to be set")
	}
}
