// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GlobalPropertiesFile is the name Home gives the global properties file.
const GlobalPropertiesFile = "cliforge.properties"

// WriteFiles creates files below dir, keyed by slash-separated relative
// path. Parent directories are created as needed.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// Home creates a temporary installation root. When globals is not empty it
// is written to <home>/bin/cliforge.properties.
func Home(t *testing.T, globals string) string {
	t.Helper()

	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "bin"), 0o755); err != nil {
		t.Fatalf("failed to create bin directory: %v", err)
	}
	if globals != "" {
		WriteFiles(t, home, map[string]string{"bin/" + GlobalPropertiesFile: globals})
	}
	return home
}

// Project creates a temporary working directory holding files.
func Project(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	WriteFiles(t, dir, files)
	return dir
}

// ReadFile returns the content of path, failing the test when it cannot be
// read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
