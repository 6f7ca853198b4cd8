package cups

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cpraster-labs/cprasterctl/internal/config"
)

// Default filter directories per kernel.
const (
	LinuxFilterDir  = "/usr/lib/cups/filter"
	DarwinFilterDir = "/usr/libexec/cups/filter"
)

// EnvFilterDir overrides all other filter directory resolution when set.
const EnvFilterDir = "CPRASTER_FILTER_DIR"

// DirSource names which resolution step decided the filter directory.
type DirSource string

const (
	SourceEnv        DirSource = "environment"
	SourceConfig     DirSource = "config"
	SourceCUPSConfig DirSource = "cups-config"
	SourceKernel     DirSource = "kernel default"
)

// FilterDir returns the CUPS filter directory for the given kernel. Kernels
// other than Darwin fall back to the Linux path.
func FilterDir(k Kernel) string {
	if k == KernelDarwin {
		return DarwinFilterDir
	}
	return LinuxFilterDir
}

// ResolveFilterDir returns the destination directory for filter installs and
// the source that decided it.
//
// Resolution order:
//  1. CPRASTER_FILTER_DIR environment variable
//  2. filter_dir config key
//  3. `cups-config --serverbin` probe (<serverbin>/filter)
//  4. kernel default
func ResolveFilterDir() (string, DirSource) {
	if v := os.Getenv(EnvFilterDir); v != "" {
		return v, SourceEnv
	}
	if v := config.Get(config.KeyFilterDir); v != "" {
		return v, SourceConfig
	}
	if dir := probeServerBin(); dir != "" {
		return dir, SourceCUPSConfig
	}
	return FilterDir(DetectKernel()), SourceKernel
}

// probeServerBin asks the local cups-config for the server binary directory.
// Any failure falls through silently to the kernel default.
func probeServerBin() string {
	path, err := exec.LookPath("cups-config")
	if err != nil {
		return ""
	}

	out, err := exec.Command(path, "--serverbin").Output()
	if err != nil {
		return ""
	}
	serverbin := strings.TrimSpace(string(out))
	if serverbin == "" {
		return ""
	}

	dir := filepath.Join(serverbin, "filter")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return ""
	}
	return dir
}
