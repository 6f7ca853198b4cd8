package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckFilterDir(t *testing.T) {
	dir := t.TempDir()

	check := CheckFilterDir(dir)
	if !check.OK {
		t.Errorf("expected pass for existing dir: %s", check.Detail)
	}

	check = CheckFilterDir(filepath.Join(dir, "missing"))
	if check.OK {
		t.Error("expected failure for missing dir")
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	check = CheckFilterDir(file)
	if check.OK {
		t.Error("expected failure for non-directory")
	}
}

func TestCheckFilterDirWritable(t *testing.T) {
	dir := t.TempDir()

	check := CheckFilterDirWritable(dir)
	if !check.OK {
		t.Errorf("expected writable: %s", check.Detail)
	}

	// No probe file left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}

func TestCheckFilterDirNotWritable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}
	if os.Getuid() == 0 {
		t.Skip("root writes anywhere")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0755)

	check := CheckFilterDirWritable(dir)
	if check.OK {
		t.Error("expected failure for read-only dir")
	}
}

func TestCheckReceipts(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "cprastertocmd")
	if err := os.WriteFile(good, []byte("bin"), 0755); err != nil {
		t.Fatal(err)
	}

	receipts := []Receipt{
		{Name: "cprastertocmd", Version: "1.0.0", Path: good},
		{Name: "ghost", Version: "1.0.0", Path: filepath.Join(dir, "ghost")},
	}

	checks := CheckReceipts(receipts)
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}
	if !checks[0].OK {
		t.Errorf("expected pass for present filter: %s", checks[0].Detail)
	}
	if checks[1].OK {
		t.Error("expected failure for missing filter")
	}
}

func TestCheckReceiptsEmpty(t *testing.T) {
	checks := CheckReceipts(nil)
	if len(checks) != 1 || !checks[0].OK {
		t.Errorf("expected single passing check, got %+v", checks)
	}
}

func TestCheckCUPSTools(t *testing.T) {
	checks := CheckCUPSTools()
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}
	// Presence depends on the host; only the names are stable.
	if checks[0].Name != "cups-config" || checks[1].Name != "lpstat" {
		t.Errorf("unexpected check names: %s, %s", checks[0].Name, checks[1].Name)
	}
}
