// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// envKeys are the variables read by the CLI.
var envKeys = []string{
	"SFD_CONFIG",
	"SFD_SITE_ROOT",
	"SFD_PACKAGE",
	"SFD_CACHE_SIZE",
	"SFD_LOG_TIMESTAMPS",
}

// IsolateEnv points HOME at an empty directory and unsets the SFD_ variables
// for the duration of the test, so a developer's own config cannot leak in.
func IsolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range envKeys {
		// Setenv registers the restore; the variable stays unset meanwhile.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTree creates a site tree in a fresh temporary directory. Files maps
// slash-separated relative paths to their content.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		WriteFile(t, root, name, content)
	}
	return root
}
