// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FixturePath returns the absolute path of a file in the docs/fixtures
// directory. The filename should be relative to that directory.
func FixturePath(t *testing.T, filename string) string {
	t.Helper()

	// Navigate to project root (testutil is in test/testutil)
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "docs", "fixtures", filename)
}

// LoadFixtureJSON loads a JSON file from the docs/fixtures directory.
// This is a convenience function for loading source fixture payloads.
func LoadFixtureJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(FixturePath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load fixture file %s: %v", filename, err)
	}
	return data
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
