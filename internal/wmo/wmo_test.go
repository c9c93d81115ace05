package wmo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wmo.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write table fixture: %v", err)
	}
	return path
}

const fixture = `{
	"0": {"day": {"description": "Sunny"}, "night": {"description": "Clear"}},
	"61": {"day": {"description": "Light Rain"}, "night": {"description": "Light Rain"}},
	"95": {"day": {"description": "Thunderstorm"}, "night": {"description": "Thunderstorm"}}
}`

func TestLoad_Describe(t *testing.T) {
	table, err := Load(writeTable(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		code     int
		expected string
	}{
		{0, "Clear"},
		{61, "Light Rain"},
		{95, "Thunderstorm"},
	}

	for _, tt := range tests {
		desc, err := table.Describe(tt.code)
		if err != nil {
			t.Errorf("Describe(%d) returned error: %v", tt.code, err)
			continue
		}
		if desc != tt.expected {
			t.Errorf("Describe(%d) = %q, want %q", tt.code, desc, tt.expected)
		}
	}
}

func TestDescribe_SelectsNightVariant(t *testing.T) {
	table, err := Load(writeTable(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	desc, err := table.Describe(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc != "Clear" {
		t.Errorf("expected night description %q, got %q", "Clear", desc)
	}
}

func TestDescribe_UnknownCode(t *testing.T) {
	table, err := Load(writeTable(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = table.Describe(42)
	if err == nil {
		t.Fatal("expected error for unknown code, got nil")
	}

	var unknownErr *UnknownCodeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *UnknownCodeError, got %T", err)
	}
	if unknownErr.Code != 42 {
		t.Errorf("expected error code 42, got %d", unknownErr.Code)
	}
}

func TestDescribe_Idempotent(t *testing.T) {
	table, err := Load(writeTable(t, fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := table.Describe(61)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := table.Describe(61)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("repeated Describe(61) differ: %q vs %q", first, second)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %T", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "invalid json",
			contents: `{not json`,
		},
		{
			name:     "non-integer key",
			contents: `{"abc": {"night": {"description": "Clear"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTable(t, tt.contents))
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Errorf("expected *LoadError, got %T", err)
			}
		})
	}
}
