// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package openf1

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/pitlane/internal/config"
)

// testScriptsConfig returns a config with limits generous enough to stay
// out of the way unless a test overrides them.
func testScriptsConfig() config.ScriptsConfig {
	return config.ScriptsConfig{
		PythonBin:        "python3",
		RaceTimingScript: "./scripts/get_replay_data.py",
		LocationsScript:  "./scripts/get_location_data.py",
		Timeout:          5 * time.Second,
		SpawnRate:        1000,
		SpawnBurst:       1000,
		BreakerMaxFails:  100,
		BreakerTimeout:   time.Minute,
	}
}

func newTestClient(cfg config.ScriptsConfig, run CommandRunner) *Client {
	client := NewClient(cfg)
	client.WithCommandRunner(run)
	return client
}

func TestInvoke_AppliesScriptTimeout(t *testing.T) {
	var hadDeadline bool
	client := newTestClient(testScriptsConfig(), func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		_, hadDeadline = ctx.Deadline()
		return []byte(`{}`), nil, nil
	})

	if _, err := client.invoke(context.Background(), "script.py", "race_timing", nil); err != nil {
		t.Fatalf("invoke() unexpected error: %v", err)
	}
	if !hadDeadline {
		t.Error("invoke() should run the script under a context deadline")
	}
}

func TestInvoke_StderrTextInError(t *testing.T) {
	client := newTestClient(testScriptsConfig(), func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return nil, []byte("Traceback (most recent call last):\n  ConnectionError\n"), errors.New("exit status 1")
	})

	_, err := client.invoke(context.Background(), "script.py", "race_timing", nil)
	if err == nil {
		t.Fatal("invoke() should fail on non-zero exit")
	}
	if got := err.Error(); !strings.Contains(got, "ConnectionError") {
		t.Errorf("error should carry stderr text, got: %s", got)
	}
}

func TestInvoke_ExitErrorWithoutStderr(t *testing.T) {
	client := newTestClient(testScriptsConfig(), func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return nil, nil, errors.New("exit status 2")
	})

	_, err := client.invoke(context.Background(), "script.py", "locations", nil)
	if err == nil {
		t.Fatal("invoke() should fail on non-zero exit")
	}
	if got := err.Error(); !strings.Contains(got, "exit status 2") {
		t.Errorf("error should carry the exit error, got: %s", got)
	}
}

func TestInvoke_StderrAloneIsNotFailure(t *testing.T) {
	client := newTestClient(testScriptsConfig(), func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(`{"ok": true}`), []byte("UserWarning: urllib3 v2 only supports OpenSSL 1.1.1+\n"), nil
	})

	stdout, err := client.invoke(context.Background(), "script.py", "locations", nil)
	if err != nil {
		t.Fatalf("invoke() failed on exit 0 with stderr noise: %v", err)
	}
	if string(stdout) != `{"ok": true}` {
		t.Errorf("stdout = %q, want the script output untouched", stdout)
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cfg := testScriptsConfig()
	cfg.BreakerMaxFails = 2

	calls := 0
	client := newTestClient(cfg, func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		calls++
		return nil, nil, errors.New("exit status 1")
	})

	for i := 0; i < 2; i++ {
		if _, err := client.invoke(context.Background(), "script.py", "race_timing", nil); err == nil {
			t.Fatalf("call %d should have failed", i+1)
		}
	}
	if calls != 2 {
		t.Fatalf("runner invoked %d times before the breaker opened, want 2", calls)
	}

	// Breaker is now open: the next call is rejected without a spawn.
	_, err := client.invoke(context.Background(), "script.py", "race_timing", nil)
	if err == nil {
		t.Fatal("invoke() should be rejected while the breaker is open")
	}
	if !IsUnavailable(err) {
		t.Errorf("open-breaker rejection should be IsUnavailable, got: %v", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState in the chain, got: %v", err)
	}
	if calls != 2 {
		t.Errorf("runner invoked %d times, want 2 (no spawn while open)", calls)
	}
}

func TestBreaker_RecoversAfterTimeout(t *testing.T) {
	cfg := testScriptsConfig()
	cfg.BreakerMaxFails = 1
	cfg.BreakerTimeout = 25 * time.Millisecond

	healthy := false
	client := newTestClient(cfg, func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		if !healthy {
			return nil, nil, errors.New("exit status 1")
		}
		return []byte(`{}`), nil, nil
	})

	if _, err := client.invoke(context.Background(), "script.py", "race_timing", nil); err == nil {
		t.Fatal("first call should fail and open the breaker")
	}

	healthy = true
	time.Sleep(50 * time.Millisecond)

	if _, err := client.invoke(context.Background(), "script.py", "race_timing", nil); err != nil {
		t.Errorf("half-open probe should succeed once the script recovers: %v", err)
	}
}

func TestSpawnRateLimit(t *testing.T) {
	cfg := testScriptsConfig()
	cfg.SpawnRate = 1
	cfg.SpawnBurst = 1

	calls := 0
	client := newTestClient(cfg, func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		calls++
		return []byte(`{}`), nil, nil
	})

	if _, err := client.invoke(context.Background(), "script.py", "locations", nil); err != nil {
		t.Fatalf("first call within burst should pass: %v", err)
	}

	_, err := client.invoke(context.Background(), "script.py", "locations", nil)
	if !errors.Is(err, ErrSpawnLimited) {
		t.Fatalf("second immediate call should be spawn limited, got: %v", err)
	}
	if !IsUnavailable(err) {
		t.Error("spawn limit rejection should be IsUnavailable")
	}
	if calls != 1 {
		t.Errorf("runner invoked %d times, want 1 (rejected call must not spawn)", calls)
	}
}

func TestIsUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "spawn limited", err: ErrSpawnLimited, want: true},
		{name: "wrapped open state", err: errors.Join(errors.New("ctx"), gobreaker.ErrOpenState), want: true},
		{name: "script failure", err: errors.New("exit status 1"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsUnavailable(tt.err); got != tt.want {
				t.Errorf("IsUnavailable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	if stateToFloat(gobreaker.StateClosed) != 0 || stateToFloat(gobreaker.StateHalfOpen) != 1 || stateToFloat(gobreaker.StateOpen) != 2 {
		t.Error("stateToFloat should encode closed=0, half-open=1, open=2")
	}
	if stateToString(gobreaker.StateOpen) != "open" || stateToString(gobreaker.StateClosed) != "closed" {
		t.Error("stateToString returned unexpected labels")
	}
}
