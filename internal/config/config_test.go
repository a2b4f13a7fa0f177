package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets a variable for the duration of the test. t.Setenv registers
// the restore; envconfig treats an empty-but-set value as an override, so the
// variable must be removed outright.
func clearEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SHIPLINE_HTTP_ADDR",
		"SHIPLINE_DB_DSN",
		"SHIPLINE_REDIS_ADDR",
		"SHIPLINE_TRACK_STEP_SECONDS",
		"SHIPLINE_LOG_LEVEL",
	} {
		clearEnv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("default http addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Tracking.StepSeconds != 60 {
		t.Errorf("default step seconds = %d, want 60", cfg.Tracking.StepSeconds)
	}
	if cfg.Tracking.StepDelay() != time.Minute {
		t.Errorf("step delay = %v, want 1m", cfg.Tracking.StepDelay())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHIPLINE_HTTP_ADDR", ":9999")
	t.Setenv("SHIPLINE_TRACK_STEP_SECONDS", "2")
	t.Setenv("SHIPLINE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("http addr = %q, want :9999", cfg.HTTP.Addr)
	}
	if cfg.Tracking.StepDelay() != 2*time.Second {
		t.Errorf("step delay = %v, want 2s", cfg.Tracking.StepDelay())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}
