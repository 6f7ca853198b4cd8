//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds the isolated directories for one integration test.
type testEnv struct {
	PayloadDir string
	FilterDir  string
	StateDir   string
}

// setupTestEnv points every path the tool resolves at temp directories.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	env := testEnv{
		PayloadDir: t.TempDir(),
		FilterDir:  t.TempDir(),
		StateDir:   t.TempDir(),
	}
	t.Setenv("CPRASTER_PAYLOADS", env.PayloadDir)
	t.Setenv("CPRASTER_FILTER_DIR", env.FilterDir)
	t.Setenv("CPRASTER_STATE", env.StateDir)
	return env
}

// writePayload creates a payload directory with a valid manifest and binary.
func writePayload(t *testing.T, source, name, version string) {
	t.Helper()

	dir := filepath.Join(source, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	m := fmt.Sprintf(`name: %s
version: "%s"
description: integration test filter
formats:
  - src: application/vnd.cups-raster
    dst: application/vnd.printer-commands
cost: 50
`, name, version)
	if err := os.WriteFile(filepath.Join(dir, "filter.yaml"), []byte(m), 0644); err != nil {
		t.Fatal(err)
	}
	content := fmt.Sprintf("#!/bin/sh\n# %s %s\nexit 0\n", name, version)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
}

func assertExecutable(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("expected %s to be executable, mode %o", path, info.Mode().Perm())
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent", path)
	}
}
