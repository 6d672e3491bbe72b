package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb/maptile"
)

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a number: %w", key, v, err)
	}
	return f, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}

// Config is the process configuration, read once at startup.
type Config struct {
	Port string

	LocationAPIBaseURL string
	// Zero leaves the transport default in place.
	LocationAPITimeout time.Duration

	InitialZoom    float64
	MaxZoom        maptile.Zoom
	FitDuration    time.Duration
	ViewportWidth  int
	ViewportHeight int
	CircleVertices int

	SessionIdleTimeout time.Duration
	// Zero means unlimited.
	SessionLimit int
}

const DefaultLocationAPIBaseURL = "https://eldamar.duckdns.org"

func Load() (Config, error) {
	cfg := Config{
		Port:               Get("PORT", "8080"),
		LocationAPIBaseURL: strings.TrimRight(Get("LOCATION_API_BASE_URL", DefaultLocationAPIBaseURL), "/"),
	}

	var err error
	if cfg.LocationAPITimeout, err = GetDuration("LOCATION_API_TIMEOUT", 0); err != nil {
		return Config{}, err
	}
	if cfg.InitialZoom, err = GetFloat("MAP_INITIAL_ZOOM", 2); err != nil {
		return Config{}, err
	}

	maxZoom, err := GetInt("MAP_MAX_ZOOM", 18)
	if err != nil {
		return Config{}, err
	}
	if maxZoom < 0 || maxZoom > 30 {
		return Config{}, fmt.Errorf("config: MAP_MAX_ZOOM must be between 0 and 30, got %d", maxZoom)
	}
	cfg.MaxZoom = maptile.Zoom(maxZoom)

	if cfg.FitDuration, err = GetDuration("MAP_FIT_DURATION", 500*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.ViewportWidth, err = GetInt("MAP_VIEWPORT_WIDTH", 1024); err != nil {
		return Config{}, err
	}
	if cfg.ViewportHeight, err = GetInt("MAP_VIEWPORT_HEIGHT", 768); err != nil {
		return Config{}, err
	}
	if cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		return Config{}, fmt.Errorf("config: viewport must be positive, got %dx%d", cfg.ViewportWidth, cfg.ViewportHeight)
	}
	if cfg.CircleVertices, err = GetInt("MAP_CIRCLE_VERTICES", 32); err != nil {
		return Config{}, err
	}
	if cfg.CircleVertices < 3 {
		return Config{}, fmt.Errorf("config: MAP_CIRCLE_VERTICES must be at least 3, got %d", cfg.CircleVertices)
	}
	if cfg.SessionIdleTimeout, err = GetDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SessionLimit, err = GetInt("SESSION_LIMIT", 1000); err != nil {
		return Config{}, err
	}
	if cfg.SessionLimit < 0 {
		return Config{}, fmt.Errorf("config: SESSION_LIMIT must not be negative, got %d", cfg.SessionLimit)
	}

	return cfg, nil
}
