// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordHTTPRequest tests HTTP request metric recording
func TestRecordHTTPRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "schedule page",
			method:     "GET",
			endpoint:   "/schedule",
			statusCode: "200",
			duration:   25 * time.Millisecond,
		},
		{
			name:       "driver detail page",
			method:     "GET",
			endpoint:   "/drivers/{driverId}",
			statusCode: "200",
			duration:   40 * time.Millisecond,
		},
		{
			name:       "unknown driver",
			method:     "GET",
			endpoint:   "/drivers/{driverId}",
			statusCode: "404",
			duration:   5 * time.Millisecond,
		},
		{
			name:       "locations API failure",
			method:     "GET",
			endpoint:   "/api/locations/{session_key}/{startTime}/{endTime}",
			statusCode: "500",
			duration:   500 * time.Millisecond,
		},
		{
			name:       "rate limited request",
			method:     "GET",
			endpoint:   "/api/locations/{session_key}/{startTime}/{endTime}",
			statusCode: "429",
			duration:   1 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the request - should not panic
			RecordHTTPRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
		})
	}
}

// TestRecordDataFileLoad tests data file load metric recording
func TestRecordDataFileLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		result   string
		duration time.Duration
		entities int
	}{
		{
			name:     "schedule loaded",
			file:     "schedule.json",
			result:   "ok",
			duration: 2 * time.Millisecond,
			entities: 120,
		},
		{
			name:     "drivers loaded",
			file:     "drivers.json",
			result:   "ok",
			duration: time.Millisecond,
			entities: 20,
		},
		{
			name:     "missing glossary",
			file:     "glossary.json",
			result:   "missing",
			duration: 100 * time.Microsecond,
			entities: 0,
		},
		{
			name:     "malformed teams file",
			file:     "teams.json",
			result:   "malformed",
			duration: 3 * time.Millisecond,
			entities: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the load - should not panic
			RecordDataFileLoad(tt.file, tt.result, tt.duration, tt.entities)
		})
	}
}

// TestRecordScriptInvocation tests script invocation metric recording
func TestRecordScriptInvocation(t *testing.T) {
	tests := []struct {
		name        string
		script      string
		duration    time.Duration
		outputBytes int
		err         error
	}{
		{
			name:        "race timing success",
			script:      "race_timing",
			duration:    8 * time.Second,
			outputBytes: 64 * 1024,
			err:         nil,
		},
		{
			name:        "locations success",
			script:      "locations",
			duration:    12 * time.Second,
			outputBytes: 4 * 1024 * 1024,
			err:         nil,
		},
		{
			name:        "script failure",
			script:      "race_timing",
			duration:    2 * time.Second,
			outputBytes: 0,
			err:         errors.New("exit status 1"),
		},
		{
			name:        "timeout",
			script:      "locations",
			duration:    60 * time.Second,
			outputBytes: 0,
			err:         errors.New("signal: killed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the invocation - should not panic
			RecordScriptInvocation(tt.script, tt.duration, tt.outputBytes, tt.err)
		})
	}
}

// TestRecordScriptRejected verifies rejected invocations count separately
func TestRecordScriptRejected(t *testing.T) {
	before := testutil.ToFloat64(ScriptInvocations.WithLabelValues("race_timing", "rejected"))
	RecordScriptRejected("race_timing")
	after := testutil.ToFloat64(ScriptInvocations.WithLabelValues("race_timing", "rejected"))

	if after != before+1 {
		t.Errorf("rejected count = %v, want %v", after, before+1)
	}
}

// TestTrackActiveRequest_RequestLifecycle simulates a realistic request lifecycle
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	// Simulate multiple concurrent requests
	for i := 0; i < 10; i++ {
		TrackActiveRequest(true) // Request starts
	}

	// Some requests complete
	for i := 0; i < 5; i++ {
		TrackActiveRequest(false) // Request ends
	}

	// More requests start
	for i := 0; i < 3; i++ {
		TrackActiveRequest(true)
	}

	// All remaining complete
	for i := 0; i < 8; i++ {
		TrackActiveRequest(false)
	}
}

// TestBreakerMetrics tests circuit breaker metric recording
func TestBreakerMetrics(t *testing.T) {
	UpdateBreakerState("race_timing", 0)
	RecordBreakerRequest("race_timing", "success")
	RecordBreakerTransition("race_timing", "closed", "open")
	UpdateBreakerState("race_timing", 2)
	RecordBreakerRequest("race_timing", "rejected")
	RecordBreakerTransition("race_timing", "open", "half-open")

	state := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("race_timing"))
	if state != 2 {
		t.Errorf("breaker state gauge = %v, want 2", state)
	}
}

// TestConcurrentRecording verifies metric recording is safe under concurrency
func TestConcurrentRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordHTTPRequest("GET", "/schedule", "200", time.Millisecond)
			RecordDataFileLoad("schedule.json", "ok", time.Millisecond, 100)
			RecordScriptInvocation("locations", time.Second, 1024, nil)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()
}

// TestUptimeAndInfo tests the system metrics
func TestUptimeAndInfo(t *testing.T) {
	SetAppInfo("test")
	UpdateUptime(time.Now().Add(-time.Minute))

	uptime := testutil.ToFloat64(AppUptime)
	if uptime < 59 || uptime > 120 {
		t.Errorf("uptime = %v, want roughly 60s", uptime)
	}
}

// TestMetricGathering verifies all registered metrics pass linting
func TestMetricGathering(t *testing.T) {
	// Record some metrics
	RecordHTTPRequest("GET", "/test", "200", time.Millisecond)
	RecordDataFileLoad("drivers.json", "ok", time.Millisecond, 1)

	// Verify we can lint the metrics (checks for consistency issues)
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}
