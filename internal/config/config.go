// Package config reads wartung settings from WARTUNG_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
)

// Config holds all runtime configuration.
type Config struct {
	DBPath         string
	PageSize       int
	SearchDebounce time.Duration
	TimeZone       string
	DefaultWeeks   int
	LogUseCases    bool
}

// DefaultConfig returns the built-in defaults. DBPath is empty until Load
// resolves the home directory.
func DefaultConfig() Config {
	return Config{
		PageSize:       domain.DefaultPageSize,
		SearchDebounce: 300 * time.Millisecond,
		TimeZone:       "Europe/Berlin",
		DefaultWeeks:   calendar.MaxWeeks,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or invalid values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("WARTUNG_DB"); v != "" {
		cfg.DBPath = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".wartung", "wartung.db")
	}
	if v := os.Getenv("WARTUNG_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("WARTUNG_SEARCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SearchDebounce = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("WARTUNG_TIMEZONE"); v != "" {
		cfg.TimeZone = v
	}
	if v := os.Getenv("WARTUNG_DEFAULT_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultWeeks = calendar.ClampWeeks(n)
		}
	}
	if v := os.Getenv("WARTUNG_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	return cfg, nil
}

// Location resolves TimeZone, falling back to UTC when the zone is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
