package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")

	if err := WriteFile(path, "payload"); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("content mismatch: got %q", string(data))
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteFile(path, "first"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFile(path, "second"); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("content mismatch: got %q", string(data))
	}
}

func TestExistenceHelpers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	missing := filepath.Join(dir, "missing")

	if !FileExists(file) {
		t.Fatalf("FileExists false for file")
	}
	if FileExists(dir) {
		t.Fatalf("FileExists true for directory")
	}
	if !DirExists(dir) {
		t.Fatalf("DirExists false for directory")
	}
	if DirExists(file) {
		t.Fatalf("DirExists true for file")
	}
	if !FileOrDirExists(file) || !FileOrDirExists(dir) {
		t.Fatalf("FileOrDirExists false for existing paths")
	}
	if FileOrDirExists(missing) {
		t.Fatalf("FileOrDirExists true for missing path")
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(path); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := EnsureDir(path); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if !DirExists(path) {
		t.Fatalf("directory not created")
	}
}
