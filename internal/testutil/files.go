// Package testutil holds fixture helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTemp writes body to name inside a fresh temp dir and returns the path.
func WriteTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// Testdata returns the path of a file under the repository's testdata dir.
func Testdata(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("missing fixture %s: %v", name, err)
	}
	return path
}

// RepoRoot walks up from the working directory to the directory holding
// go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
