// Package wmo translates WMO weather codes into human-readable
// descriptions using a static lookup table.
// (Code table credit: https://gist.github.com/stellasphere/9490c195ed2b53c707087c8c2db4ec0c)
package wmo

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// DefaultPath is where Load looks when no override is set.
const DefaultPath = "wmo.json"

// Table maps WMO weather codes to their night-time descriptions.
// Immutable after construction.
type Table struct {
	descriptions map[int]string
}

// LoadError reports a missing or malformed code table file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("weather code table %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// UnknownCodeError reports a lookup for a code the table has no entry
// for.
type UnknownCodeError struct {
	Code int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown weather code %d", e.Code)
}

// New builds a table from a code → description mapping.
func New(descriptions map[int]string) *Table {
	return &Table{descriptions: descriptions}
}

// Load reads the code table at path. Entries are keyed by stringified
// integer code and carry a night sub-object with a description.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var entries map[string]struct {
		Night struct {
			Description string `json:"description"`
		} `json:"night"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	descriptions := make(map[int]string, len(entries))
	for key, entry := range entries {
		code, err := strconv.Atoi(key)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("non-integer code key %q", key)}
		}
		descriptions[code] = entry.Night.Description
	}

	return New(descriptions), nil
}

// Describe returns the night-time description for code.
func (t *Table) Describe(code int) (string, error) {
	desc, ok := t.descriptions[code]
	if !ok {
		return "", &UnknownCodeError{Code: code}
	}
	return desc, nil
}
