package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmodSetsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}

	path := filepath.Join(t.TempDir(), "filter")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, FilterMode); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != FilterMode {
		t.Errorf("expected mode %o, got %o", FilterMode, info.Mode().Perm())
	}
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}

	dir := t.TempDir()

	exec := filepath.Join(dir, "exec")
	if err := os.WriteFile(exec, []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(plain, []byte("bin"), 0644); err != nil {
		t.Fatal(err)
	}

	ok, err := IsExecutable(exec)
	if err != nil {
		t.Fatalf("IsExecutable(exec): %v", err)
	}
	if !ok {
		t.Error("expected exec to be executable")
	}

	ok, err = IsExecutable(plain)
	if err != nil {
		t.Fatalf("IsExecutable(plain): %v", err)
	}
	if ok {
		t.Error("expected plain to not be executable")
	}
}

func TestIsExecutableMissingFile(t *testing.T) {
	if _, err := IsExecutable(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsExecutableDirectory(t *testing.T) {
	if _, err := IsExecutable(t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}
