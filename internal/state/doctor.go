package state

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/cpraster-labs/cprasterctl/internal/platform"
)

// Check is a single doctor check result.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// CheckFilterDir verifies that the filter directory exists and is a directory.
func CheckFilterDir(dir string) Check {
	info, err := os.Stat(dir)
	if err != nil {
		return Check{Name: "filter directory", Detail: fmt.Sprintf("%s: %v", dir, err)}
	}
	if !info.IsDir() {
		return Check{Name: "filter directory", Detail: fmt.Sprintf("%s is not a directory", dir)}
	}
	return Check{Name: "filter directory", OK: true, Detail: dir}
}

// CheckFilterDirWritable verifies the filter directory accepts new files by
// creating and removing a probe file. Installing into the real CUPS filter
// directory usually needs root.
func CheckFilterDirWritable(dir string) Check {
	f, err := os.CreateTemp(dir, ".cpraster-probe-*")
	if err != nil {
		return Check{Name: "filter directory writable", Detail: fmt.Sprintf("%s: %v (try running with sudo)", dir, err)}
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return Check{Name: "filter directory writable", OK: true, Detail: dir}
}

// CheckCUPSTools reports whether the CUPS command-line tools are on PATH.
// Their absence suggests CUPS is not installed on this host.
func CheckCUPSTools() []Check {
	checks := make([]Check, 0, 2)
	for _, tool := range []string{"cups-config", "lpstat"} {
		if path, err := exec.LookPath(tool); err == nil {
			checks = append(checks, Check{Name: tool, OK: true, Detail: path})
		} else {
			checks = append(checks, Check{Name: tool, Detail: "not found on PATH"})
		}
	}
	return checks
}

// CheckReceipts verifies each recorded filter still exists at its installed
// path and is executable.
func CheckReceipts(receipts []Receipt) []Check {
	if len(receipts) == 0 {
		return []Check{{Name: "installed filters", OK: true, Detail: "none recorded"}}
	}

	checks := make([]Check, 0, len(receipts))
	for _, r := range receipts {
		name := fmt.Sprintf("filter %s", r.Name)
		ok, err := platform.IsExecutable(r.Path)
		switch {
		case err != nil:
			checks = append(checks, Check{Name: name, Detail: fmt.Sprintf("%s: %v", r.Path, err)})
		case !ok:
			checks = append(checks, Check{Name: name, Detail: fmt.Sprintf("%s is not executable", r.Path)})
		default:
			checks = append(checks, Check{Name: name, OK: true, Detail: fmt.Sprintf("%s (%s)", r.Path, r.Version)})
		}
	}
	return checks
}
