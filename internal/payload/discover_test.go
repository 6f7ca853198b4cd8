package payload

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writePayload creates a payload directory under source with a valid manifest
// and a binary file, returning its path.
func writePayload(t *testing.T, source, name, version string) string {
	t.Helper()

	dir := filepath.Join(source, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	m := fmt.Sprintf(`name: %s
version: "%s"
description: test filter
formats:
  - src: application/vnd.cups-raster
    dst: application/vnd.printer-commands
`, name, version)
	if err := os.WriteFile(filepath.Join(dir, "filter.yaml"), []byte(m), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDiscover(t *testing.T) {
	source := t.TempDir()
	writePayload(t, source, "cprastertocmd", "1.0.0")
	writePayload(t, source, "cprastertopwg", "0.3.0")

	payloads, warnings, err := Discover([]string{source})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(payloads))
	}

	// Sorted by name.
	if payloads[0].Name != "cprastertocmd" || payloads[1].Name != "cprastertopwg" {
		t.Errorf("unexpected order: %s, %s", payloads[0].Name, payloads[1].Name)
	}
	if payloads[0].Manifest.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", payloads[0].Manifest.Version)
	}
	if payloads[0].BinPath != filepath.Join(source, "cprastertocmd", "cprastertocmd") {
		t.Errorf("unexpected bin path %s", payloads[0].BinPath)
	}
}

func TestDiscoverSkipsHiddenDirs(t *testing.T) {
	source := t.TempDir()
	if err := os.MkdirAll(filepath.Join(source, ".hidden"), 0755); err != nil {
		t.Fatal(err)
	}

	payloads, warnings, err := Discover([]string{source})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(payloads) != 0 || len(warnings) != 0 {
		t.Errorf("expected nothing discovered, got %d payloads, %d warnings", len(payloads), len(warnings))
	}
}

func TestDiscoverWarnsOnInvalidManifest(t *testing.T) {
	source := t.TempDir()
	dir := filepath.Join(source, "broken")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "filter.yaml"), []byte("name: broken\n"), 0644); err != nil {
		t.Fatal(err)
	}

	payloads, warnings, err := Discover([]string{source})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(payloads) != 0 {
		t.Errorf("expected no payloads, got %d", len(payloads))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", warnings)
	}
}

func TestDiscoverWarnsOnMissingBinary(t *testing.T) {
	source := t.TempDir()
	dir := writePayload(t, source, "cprastertocmd", "1.0.0")
	if err := os.Remove(filepath.Join(dir, "cprastertocmd")); err != nil {
		t.Fatal(err)
	}

	payloads, warnings, err := Discover([]string{source})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(payloads) != 0 {
		t.Errorf("expected no payloads, got %d", len(payloads))
	}
	if len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", warnings)
	}
}

func TestDiscoverEarlierSourceShadows(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writePayload(t, first, "cprastertocmd", "2.0.0")
	writePayload(t, second, "cprastertocmd", "1.0.0")

	payloads, _, err := Discover([]string{first, second})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(payloads) != 1 {
		t.Fatalf("expected 1 payload, got %d", len(payloads))
	}
	if payloads[0].Manifest.Version != "2.0.0" {
		t.Errorf("expected version from first source, got %s", payloads[0].Manifest.Version)
	}
}

func TestFind(t *testing.T) {
	source := t.TempDir()
	writePayload(t, source, "cprastertocmd", "1.0.0")

	p, err := Find("cprastertocmd", []string{source})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if p.Name != "cprastertocmd" {
		t.Errorf("unexpected payload %s", p.Name)
	}

	if _, err := Find("nonexistent", []string{source}); err == nil {
		t.Error("expected error for unknown payload")
	}
}

func TestSourcesEnvOverride(t *testing.T) {
	source := t.TempDir()
	t.Setenv(EnvPayloads, source)

	sources, err := Sources()
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	if len(sources) == 0 || sources[0] != source {
		t.Errorf("expected %s first, got %v", source, sources)
	}
}
