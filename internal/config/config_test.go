package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "LOCATION_API_BASE_URL", "LOCATION_API_TIMEOUT", "MAP_INITIAL_ZOOM",
		"MAP_MAX_ZOOM", "MAP_FIT_DURATION", "MAP_VIEWPORT_WIDTH", "MAP_VIEWPORT_HEIGHT",
		"MAP_CIRCLE_VERTICES", "SESSION_IDLE_TIMEOUT", "SESSION_LIMIT",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.LocationAPIBaseURL != DefaultLocationAPIBaseURL {
		t.Errorf("base url = %q", cfg.LocationAPIBaseURL)
	}
	if cfg.LocationAPITimeout != 0 {
		t.Errorf("timeout = %v, want 0", cfg.LocationAPITimeout)
	}
	if cfg.InitialZoom != 2 || cfg.MaxZoom != 18 {
		t.Errorf("zoom initial=%v max=%v, want 2 and 18", cfg.InitialZoom, cfg.MaxZoom)
	}
	if cfg.FitDuration != 500*time.Millisecond {
		t.Errorf("fit duration = %v, want 500ms", cfg.FitDuration)
	}
	if cfg.CircleVertices != 32 {
		t.Errorf("circle vertices = %d, want 32", cfg.CircleVertices)
	}
	if cfg.SessionLimit != 1000 {
		t.Errorf("session limit = %d, want 1000", cfg.SessionLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOCATION_API_BASE_URL", "http://localhost:9000/")
	t.Setenv("MAP_MAX_ZOOM", "16")
	t.Setenv("LOCATION_API_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LocationAPIBaseURL != "http://localhost:9000" {
		t.Errorf("base url = %q, want trailing slash trimmed", cfg.LocationAPIBaseURL)
	}
	if cfg.MaxZoom != 16 {
		t.Errorf("max zoom = %v, want 16", cfg.MaxZoom)
	}
	if cfg.LocationAPITimeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.LocationAPITimeout)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MAP_MAX_ZOOM", "deep")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-integer MAP_MAX_ZOOM")
	}

	t.Setenv("MAP_MAX_ZOOM", "")
	t.Setenv("MAP_CIRCLE_VERTICES", "2")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for too few circle vertices")
	}

	t.Setenv("MAP_CIRCLE_VERTICES", "")
	t.Setenv("SESSION_LIMIT", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative SESSION_LIMIT")
	}
}
