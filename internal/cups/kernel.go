package cups

import (
	"os/exec"
	"runtime"
	"strings"
)

// Kernel is a host kernel name as reported by `uname -s` ("Linux", "Darwin").
type Kernel string

const (
	KernelLinux  Kernel = "Linux"
	KernelDarwin Kernel = "Darwin"
)

// DetectKernel returns the running kernel's name. It asks `uname -s` first so
// the answer matches what CUPS's own build saw; when uname is unavailable or
// prints nothing, the Go runtime's GOOS is mapped instead.
func DetectKernel() Kernel {
	if out, err := exec.Command("uname", "-s").Output(); err == nil {
		if name := strings.TrimSpace(string(out)); name != "" {
			return Kernel(name)
		}
	}
	return kernelFromGOOS(runtime.GOOS)
}

// kernelFromGOOS maps a GOOS value onto the uname naming scheme. Values
// without a uname equivalent pass through unchanged and resolve to the
// fallback filter directory.
func kernelFromGOOS(goos string) Kernel {
	switch goos {
	case "linux":
		return KernelLinux
	case "darwin":
		return KernelDarwin
	default:
		return Kernel(goos)
	}
}
