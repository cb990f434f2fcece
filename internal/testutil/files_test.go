package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTemp(t *testing.T) {
	path := WriteTemp(t, "a.yaml", "x: 1\n")
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "x: 1\n" {
		t.Fatalf("unexpected contents %q (%v)", data, err)
	}
}

func TestRepoRootHoldsGoMod(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
	if Testdata(t, "preset.yaml") == "" {
		t.Fatalf("expected preset fixture path")
	}
}
