package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultPath is where Load looks when no override is set.
const DefaultPath = ".fastweathercfg.json"

// Config holds the location settings for a forecast request. Immutable
// after Load.
type Config struct {
	Latitude  float64
	Longitude float64
	Timezone  string
	Location  *time.Location
}

// LoadError reports a missing, unreadable, malformed, or incomplete
// config file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and validates the config file at path. The timezone is
// resolved to a *time.Location here so later stages never re-validate.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	var fields struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Timezone  *string  `json:"timezone"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	if fields.Latitude == nil {
		return Config{}, &LoadError{Path: path, Err: fmt.Errorf("missing required field %q", "latitude")}
	}
	if fields.Longitude == nil {
		return Config{}, &LoadError{Path: path, Err: fmt.Errorf("missing required field %q", "longitude")}
	}
	if fields.Timezone == nil {
		return Config{}, &LoadError{Path: path, Err: fmt.Errorf("missing required field %q", "timezone")}
	}

	loc, err := time.LoadLocation(*fields.Timezone)
	if err != nil {
		return Config{}, &LoadError{Path: path, Err: fmt.Errorf("invalid timezone: %w", err)}
	}

	return Config{
		Latitude:  *fields.Latitude,
		Longitude: *fields.Longitude,
		Timezone:  *fields.Timezone,
		Location:  loc,
	}, nil
}
